package models

import (
	"time"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/google/uuid"
)

// PersonModel is the persistence model for the Person domain entity.
type PersonModel struct {
	BaseModel
	TombstoneModel
	FirstName        string               `gorm:"type:varchar(100);not null"`
	LastName         string               `gorm:"type:varchar(100);not null"`
	NationalID       *int64               `gorm:"index"`
	PhoneNumber      string               `gorm:"type:varchar(50)"`
	Gender           directory.Gender     `gorm:"type:varchar(10);not null"`
	PersonType       directory.PersonType `gorm:"type:varchar(20);not null;default:'resident'"`
	RegistrationDate time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "persons"
}

// ToDomain converts the persistence model to a domain Person entity.
func (m *PersonModel) ToDomain() *directory.Person {
	return &directory.Person{
		BaseEntity:       m.BaseModel.ToDomain(),
		SoftDeletable:    m.TombstoneModel.ToDomain(),
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		NationalID:       m.NationalID,
		PhoneNumber:      m.PhoneNumber,
		Gender:           m.Gender,
		PersonType:       m.PersonType,
		RegistrationDate: m.RegistrationDate,
	}
}

// FromDomain populates the persistence model from a domain Person entity.
func (m *PersonModel) FromDomain(p *directory.Person) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.FromDomainSoftDeletable(p.SoftDeletable)
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.NationalID = p.NationalID
	m.PhoneNumber = p.PhoneNumber
	m.Gender = p.Gender
	m.PersonType = p.PersonType
	m.RegistrationDate = p.RegistrationDate
}

// PersonModelFromDomain creates a new persistence model from a domain Person entity.
func PersonModelFromDomain(p *directory.Person) *PersonModel {
	m := &PersonModel{}
	m.FromDomain(p)
	return m
}

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	TombstoneModel
	Email        string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         directory.Role `gorm:"type:varchar(20);not null;default:'resident'"`
	PersonID     *uuid.UUID     `gorm:"type:uuid;index"`
	IsActive     bool           `gorm:"not null;default:true"`
	IsVerified   bool           `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *directory.User {
	return &directory.User{
		BaseEntity:    m.BaseModel.ToDomain(),
		SoftDeletable: m.TombstoneModel.ToDomain(),
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Role:          m.Role,
		PersonID:      m.PersonID,
		IsActive:      m.IsActive,
		IsVerified:    m.IsVerified,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *directory.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.FromDomainSoftDeletable(u.SoftDeletable)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.PersonID = u.PersonID
	m.IsActive = u.IsActive
	m.IsVerified = u.IsVerified
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *directory.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// VillageModel is the persistence model for the Village domain entity.
// The five-part administrative tuple is unique; village lookup during
// join and migration resolves against it.
type VillageModel struct {
	BaseModel
	Province string     `gorm:"type:varchar(100);not null;uniqueIndex:ux_villages_attrs"`
	District string     `gorm:"type:varchar(100);not null;uniqueIndex:ux_villages_attrs"`
	Sector   string     `gorm:"type:varchar(100);not null;uniqueIndex:ux_villages_attrs"`
	Cell     string     `gorm:"type:varchar(100);not null;uniqueIndex:ux_villages_attrs"`
	Village  string     `gorm:"type:varchar(100);not null;uniqueIndex:ux_villages_attrs"`
	LeaderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (VillageModel) TableName() string {
	return "villages"
}

// ToDomain converts the persistence model to a domain Village entity.
func (m *VillageModel) ToDomain() *directory.Village {
	return &directory.Village{
		BaseEntity: m.BaseModel.ToDomain(),
		VillageAttrs: directory.VillageAttrs{
			Province: m.Province,
			District: m.District,
			Sector:   m.Sector,
			Cell:     m.Cell,
			Village:  m.Village,
		},
		LeaderID: m.LeaderID,
	}
}

// FromDomain populates the persistence model from a domain Village entity.
func (m *VillageModel) FromDomain(v *directory.Village) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Province = v.Province
	m.District = v.District
	m.Sector = v.Sector
	m.Cell = v.Cell
	m.Village = v.Village
	m.LeaderID = v.LeaderID
}

// VillageModelFromDomain creates a new persistence model from a domain Village entity.
func VillageModelFromDomain(v *directory.Village) *VillageModel {
	m := &VillageModel{}
	m.FromDomain(v)
	return m
}

// OTPModel is the persistence model for one-time verification codes.
type OTPModel struct {
	BaseModel
	UserID  uuid.UUID            `gorm:"type:uuid;not null;index"`
	Code    string               `gorm:"type:varchar(10);not null"`
	Purpose directory.OTPPurpose `gorm:"type:varchar(20);not null"`
	IsUsed  bool                 `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OTPModel) TableName() string {
	return "otps"
}

// ToDomain converts the persistence model to a domain OTP entity.
func (m *OTPModel) ToDomain() *directory.OTP {
	return &directory.OTP{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Code:       m.Code,
		Purpose:    m.Purpose,
		IsUsed:     m.IsUsed,
	}
}

// FromDomain populates the persistence model from a domain OTP entity.
func (m *OTPModel) FromDomain(o *directory.OTP) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.UserID = o.UserID
	m.Code = o.Code
	m.Purpose = o.Purpose
	m.IsUsed = o.IsUsed
}

// OTPModelFromDomain creates a new persistence model from a domain OTP entity.
func OTPModelFromDomain(o *directory.OTP) *OTPModel {
	m := &OTPModel{}
	m.FromDomain(o)
	return m
}
