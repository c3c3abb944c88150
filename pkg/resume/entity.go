package resume

import (
	"context"

	"github.com/google/uuid"
)

// Status — этап воронки, на котором находится резюме.
type Status string

const (
	StatusInWork    Status = "in_work"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusOffer     Status = "offer"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInWork, StatusScreening, StatusInterview, StatusRejected, StatusOffer:
		return true
	}
	return false
}

// InterestInJob — заинтересованность кандидата в поиске работы.
type InterestInJob string

const (
	InterestLooking    InterestInJob = "looking for job"
	InterestNotLooking InterestInJob = "not looking for a job"
	InterestConsiders  InterestInJob = "considers proposals"
	InterestDecides    InterestInJob = "offered a job, decides"
)

func (i InterestInJob) Valid() bool {
	switch i {
	case InterestLooking, InterestNotLooking, InterestConsiders, InterestDecides:
		return true
	}
	return false
}

// Gender — пол кандидата.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Degree — уровень образования.
type Degree string

const (
	DegreeIncompletePrimary   Degree = "incomplete primary"
	DegreePrimary             Degree = "primary"
	DegreeSecondary           Degree = "secondary"
	DegreeIncompleteSecondary Degree = "incomplete secondary"
	DegreeSecondaryVocational Degree = "secondary vocational"
	DegreeIncompleteHigher    Degree = "incomplete higher"
	DegreeHigher              Degree = "higher"
	DegreeBachelor            Degree = "bachelor"
	DegreeMaster              Degree = "master"
	DegreePhD                 Degree = "phd"
)

func (d Degree) Valid() bool {
	switch d {
	case DegreeIncompletePrimary, DegreePrimary, DegreeSecondary,
		DegreeIncompleteSecondary, DegreeSecondaryVocational,
		DegreeIncompleteHigher, DegreeHigher, DegreeBachelor,
		DegreeMaster, DegreePhD:
		return true
	}
	return false
}

// Candidate — анкета кандидата. Создаётся независимо, привязывается к
// резюме при его создании и живёт не дольше него.
type Candidate struct {
	ID                int64   `json:"id"`
	FirstName         string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName          *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Age               *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	Gender            *Gender `json:"gender,omitempty" validate:"omitempty,gender"`
	City              *string `json:"city,omitempty" validate:"omitempty,max=50"`
	About             *string `json:"about,omitempty" validate:"omitempty,max=2000"`
	Telegram          *string `json:"telegram,omitempty" validate:"omitempty,url"`
	Whatsapp          *string `json:"whatsapp,omitempty" validate:"omitempty,url"`
	Linkedin          *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Github            *string `json:"github,omitempty" validate:"omitempty,url"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber       *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

// Education — запись об образовании; принадлежит ровно одному резюме.
type Education struct {
	ID                     int64  `json:"id"`
	ResumeID               int64  `json:"-"`
	EducationalInstitution string `json:"educational_institution" validate:"required,max=255"`
	Degree                 Degree `json:"degree" validate:"required,degree"`
	Year                   int    `json:"year" validate:"required,gte=1900"`
	Specialization         string `json:"specialization" validate:"required,max=255"`
}

// WorkExperience — запись об опыте работы; принадлежит ровно одному
// резюме. Даты в формате YYYY-MM-DD.
type WorkExperience struct {
	ID          int64  `json:"id"`
	ResumeID    int64  `json:"-"`
	Company     string `json:"company" validate:"required,max=255"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required,max=2000"`
}

// Resume — агрегат: резюме вместе с кандидатом, образованием и опытом.
// Создаётся и удаляется как единое целое.
type Resume struct {
	ID                    int64          `json:"id"`
	VacancyID             int64          `json:"vacancy_id"`
	CandidateID           int64          `json:"-"`
	Status                Status         `json:"resume_status" validate:"required,resume_status"`
	Rating                *int           `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	JobTitle              string         `json:"job_title" validate:"required,min=1,max=60"`
	ExpectedSalary        *int           `json:"expected_salary,omitempty" validate:"omitempty,gte=0"`
	InterestInJob         *InterestInJob `json:"interest_in_job,omitempty" validate:"omitempty,interest_in_job"`
	Skills                []string       `json:"skills,omitempty" validate:"omitempty,max=20,dive,max=255"`
	ReadyToRelocate       *bool          `json:"ready_to_relocate,omitempty"`
	ReadyForBusinessTrips *bool          `json:"ready_for_business_trips,omitempty"`

	Candidate   Candidate        `json:"candidate"`
	Educations  []Education      `json:"educations,omitempty" validate:"omitempty,dive"`
	Experiences []WorkExperience `json:"experiences,omitempty" validate:"omitempty,dive"`
}

// Repository — порт хранения агрегата резюме.
type Repository interface {
	// CreateAggregate атомарно создаёт кандидата, резюме и дочерние
	// записи; возвращает агрегат с присвоенными идентификаторами.
	CreateAggregate(ctx context.Context, r Resume) (Resume, error)
	// GetByID возвращает резюме вместе с кандидатом, образованием и опытом.
	GetByID(ctx context.Context, id int64) (Resume, error)
	// ListByOwner возвращает резюме по всем вакансиям владельца.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Resume, error)
	ListByVacancyAndStatus(ctx context.Context, vacancyID int64, status Status) ([]Resume, error)
	// ListAll возвращает резюме всех владельцев. Админ-доступ.
	ListAll(ctx context.Context, limit, offset int) ([]Resume, error)
	// UpdateAggregate атомарно сохраняет резюме, кандидата и дочерние записи.
	UpdateAggregate(ctx context.Context, r Resume) error
	// Delete удаляет резюме; кандидат и дочерние записи уходят каскадом
	// по внешним ключам схемы.
	Delete(ctx context.Context, id int64) error
}

// CandidateRepository — порт хранения кандидатов вне агрегата.
type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id int64) (Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id int64) error
}
