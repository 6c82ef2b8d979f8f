// Package notification defines the dispatch port the application layer
// uses to inform people of things that happened. Delivery is
// fire-and-forget and at-most-once: callers never wait on it, never see
// its failures, and never depend on ordering.
package notification

import "context"

// JobKind identifies the notification template to render
type JobKind string

const (
	KindResidentJoined    JobKind = "resident_joined"
	KindResidentMigrated  JobKind = "resident_migrated"
	KindVisitorRegistered JobKind = "visitor_registered"
	KindOTPCode           JobKind = "otp_code"
)

// Job is one notification to deliver. Recipient is the destination
// email address; an empty recipient means the job is silently skipped.
// Data carries the template fields for the job's kind.
type Job struct {
	Kind      JobKind           `json:"kind"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}

// Dispatcher accepts jobs for asynchronous delivery. Dispatch must not
// block on delivery and must never return delivery errors; it may return
// an error only when the job cannot be accepted at all, and even that is
// logged by callers rather than propagated.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job)
}

// MigrationJob builds the single dispatch produced by a completed
// migration. Both leader emails are optional; whichever is present gets
// its own independent delivery attempt downstream.
func MigrationJob(residentName, oldVillage, oldLeaderEmail, newVillage, newLeaderEmail string) Job {
	return Job{
		Kind: KindResidentMigrated,
		Data: map[string]string{
			"resident_name":    residentName,
			"old_village":      oldVillage,
			"old_leader_email": oldLeaderEmail,
			"new_village":      newVillage,
			"new_leader_email": newLeaderEmail,
		},
	}
}

// JoinJob builds the notification sent to a village leader when someone
// requests to join their village.
func JoinJob(leaderEmail, residentName, villageName string) Job {
	return Job{
		Kind:      KindResidentJoined,
		Recipient: leaderEmail,
		Data: map[string]string{
			"resident_name": residentName,
			"village":       villageName,
		},
	}
}

// VisitorJob builds the notification sent to a village leader when a
// visitor is registered with a host in their village.
func VisitorJob(leaderEmail, visitorName, hostName, villageName string) Job {
	return Job{
		Kind:      KindVisitorRegistered,
		Recipient: leaderEmail,
		Data: map[string]string{
			"visitor_name": visitorName,
			"host_name":    hostName,
			"village":      villageName,
		},
	}
}

// OTPJob builds the email carrying a one-time code
func OTPJob(email, code, purpose string) Job {
	return Job{
		Kind:      KindOTPCode,
		Recipient: email,
		Data: map[string]string{
			"code":    code,
			"purpose": purpose,
		},
	}
}
