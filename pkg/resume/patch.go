package resume

// Частичное обновление: поле со значением nil не трогает текущее
// состояние. Дочерние записи адресуются идентификатором; элементы с
// неизвестным или чужим id молча пропускаются — создание новых детей
// возможно только через создание агрегата.

// CandidatePatch — частичное обновление кандидата внутри агрегата.
type CandidatePatch struct {
	FirstName         *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
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

// EducationPatch — частичное обновление записи об образовании по id.
type EducationPatch struct {
	ID                     int64   `json:"id" validate:"required"`
	EducationalInstitution *string `json:"educational_institution,omitempty" validate:"omitempty,max=255"`
	Degree                 *Degree `json:"degree,omitempty" validate:"omitempty,degree"`
	Year                   *int    `json:"year,omitempty" validate:"omitempty,gte=1900"`
	Specialization         *string `json:"specialization,omitempty" validate:"omitempty,max=255"`
}

// ExperiencePatch — частичное обновление записи об опыте работы по id.
type ExperiencePatch struct {
	ID          int64   `json:"id" validate:"required"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=255"`
	StartDate   *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// Patch — частичное обновление агрегата резюме.
type Patch struct {
	ID                    int64            `json:"id" validate:"required"`
	Status                *Status          `json:"resume_status,omitempty" validate:"omitempty,resume_status"`
	Rating                *int             `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	JobTitle              *string          `json:"job_title,omitempty" validate:"omitempty,min=1,max=60"`
	ExpectedSalary        *int             `json:"expected_salary,omitempty" validate:"omitempty,gte=0"`
	InterestInJob         *InterestInJob   `json:"interest_in_job,omitempty" validate:"omitempty,interest_in_job"`
	Skills                []string         `json:"skills,omitempty" validate:"omitempty,max=20,dive,max=255"`
	ReadyToRelocate       *bool            `json:"ready_to_relocate,omitempty"`
	ReadyForBusinessTrips *bool            `json:"ready_for_business_trips,omitempty"`
	Candidate             *CandidatePatch  `json:"candidate,omitempty"`
	Educations            []EducationPatch `json:"educations,omitempty" validate:"omitempty,dive"`
	Experiences           []ExperiencePatch `json:"experiences,omitempty" validate:"omitempty,dive"`
}

func (p CandidatePatch) apply(c *Candidate) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = p.LastName
	}
	if p.Age != nil {
		c.Age = p.Age
	}
	if p.Gender != nil {
		c.Gender = p.Gender
	}
	if p.City != nil {
		c.City = p.City
	}
	if p.About != nil {
		c.About = p.About
	}
	if p.Telegram != nil {
		c.Telegram = p.Telegram
	}
	if p.Whatsapp != nil {
		c.Whatsapp = p.Whatsapp
	}
	if p.Linkedin != nil {
		c.Linkedin = p.Linkedin
	}
	if p.Github != nil {
		c.Github = p.Github
	}
	if p.Email != nil {
		c.Email = p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = p.PhoneNumber
	}
	if p.ProfilePictureURL != nil {
		c.ProfilePictureURL = p.ProfilePictureURL
	}
}

func (p EducationPatch) apply(e *Education) {
	if p.EducationalInstitution != nil {
		e.EducationalInstitution = *p.EducationalInstitution
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.Specialization != nil {
		e.Specialization = *p.Specialization
	}
}

func (p ExperiencePatch) apply(w *WorkExperience) {
	if p.Company != nil {
		w.Company = *p.Company
	}
	if p.StartDate != nil {
		w.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		w.EndDate = *p.EndDate
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
}

// Apply накладывает установленные поля патча на загруженный агрегат.
// Возвращает id дочерних записей, которые были пропущены из-за
// несовпадения принадлежности.
func (p Patch) Apply(r *Resume) (skipped []int64, err error) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Rating != nil {
		r.Rating = p.Rating
	}
	if p.JobTitle != nil {
		r.JobTitle = *p.JobTitle
	}
	if p.ExpectedSalary != nil {
		r.ExpectedSalary = p.ExpectedSalary
	}
	if p.InterestInJob != nil {
		r.InterestInJob = p.InterestInJob
	}
	if p.Skills != nil {
		r.Skills = p.Skills
	}
	if p.ReadyToRelocate != nil {
		r.ReadyToRelocate = p.ReadyToRelocate
	}
	if p.ReadyForBusinessTrips != nil {
		r.ReadyForBusinessTrips = p.ReadyForBusinessTrips
	}

	if p.Candidate != nil {
		if r.Candidate.ID == 0 {
			// Резюме без кандидата структурно невозможно, но
			// проверяем прежде чем писать в пустую запись.
			return nil, ErrIntegrity
		}
		p.Candidate.apply(&r.Candidate)
	}

	if len(p.Educations) > 0 {
		byID := make(map[int64]*Education, len(r.Educations))
		for i := range r.Educations {
			byID[r.Educations[i].ID] = &r.Educations[i]
		}
		for _, ep := range p.Educations {
			e, ok := byID[ep.ID]
			if !ok || e.ResumeID != r.ID {
				skipped = append(skipped, ep.ID)
				continue
			}
			ep.apply(e)
		}
	}

	if len(p.Experiences) > 0 {
		byID := make(map[int64]*WorkExperience, len(r.Experiences))
		for i := range r.Experiences {
			byID[r.Experiences[i].ID] = &r.Experiences[i]
		}
		for _, wp := range p.Experiences {
			w, ok := byID[wp.ID]
			if !ok || w.ResumeID != r.ID {
				skipped = append(skipped, wp.ID)
				continue
			}
			wp.apply(w)
		}
	}
	return skipped, nil
}
