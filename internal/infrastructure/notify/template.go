package notify

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Manzp111/smartville/internal/application/notification"
)

// Message bodies are plain text, so text/template rather than html/template.
// Each kind has a subject and body template executed against the job's
// data map; templates are parsed once at package init so a malformed one
// fails at startup, not on the first dequeued job.
type messageTemplate struct {
	subject *template.Template
	body    *template.Template
}

var messageTemplates = map[notification.JobKind]messageTemplate{
	notification.KindResidentJoined: parseMessage("resident_joined",
		`New residency request in {{.village}}`,
		`{{.resident_name}} has requested to join {{.village}}.

Review the request in your SmartVillage dashboard.`,
	),
	notification.KindResidentMigrated: parseMessage("resident_migrated",
		`Residency migration: {{.resident_name}}`,
		`{{.resident_name}} has migrated from {{.old_village}} to {{.new_village}}.

The new residency is pending approval in {{.new_village}}.`,
	),
	notification.KindVisitorRegistered: parseMessage("visitor_registered",
		`Visitor registered in {{.village}}`,
		`{{.visitor_name}} is visiting {{.host_name}} in {{.village}}.`,
	),
	notification.KindOTPCode: parseMessage("otp_code",
		`Your SmartVillage verification code`,
		`Your {{.purpose}} code is {{.code}}.

It expires in 30 minutes. If you did not request it, ignore this message.`,
	),
}

func parseMessage(name, subject, body string) messageTemplate {
	return messageTemplate{
		subject: template.Must(template.New(name + ".subject").Parse(subject)),
		body:    template.Must(template.New(name + ".body").Parse(body)),
	}
}

// render produces the subject and body for a job's kind. Unknown kinds
// render to a generic message rather than failing, since a job already
// dequeued has nowhere to go back to.
func render(job notification.Job) (subject, body string) {
	tmpl, ok := messageTemplates[job.Kind]
	if !ok {
		return "SmartVillage notification", fmt.Sprintf("Notification of kind %q.", job.Kind)
	}

	var sb, bb strings.Builder
	if err := tmpl.subject.Execute(&sb, job.Data); err != nil {
		return "SmartVillage notification", fmt.Sprintf("Notification of kind %q.", job.Kind)
	}
	if err := tmpl.body.Execute(&bb, job.Data); err != nil {
		return sb.String(), fmt.Sprintf("Notification of kind %q.", job.Kind)
	}
	return sb.String(), bb.String()
}

// recipients lists the addresses a job delivers to, dropping empties.
// Migration jobs fan out to both village leaders; every other kind
// delivers to the single recipient on the job.
func recipients(job notification.Job) []string {
	if job.Kind == notification.KindResidentMigrated {
		var out []string
		if addr := job.Data["old_leader_email"]; addr != "" {
			out = append(out, addr)
		}
		if addr := job.Data["new_leader_email"]; addr != "" {
			out = append(out, addr)
		}
		return out
	}
	if job.Recipient == "" {
		return nil
	}
	return []string{job.Recipient}
}
