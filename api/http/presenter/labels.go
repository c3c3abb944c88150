package presenter

import "github.com/hirebase/recruiting/pkg/resume"

// Отображаемые подписи enum-значений. Принадлежат слою представления,
// доменный движок оперирует только самими значениями.

var StatusLabels = map[resume.Status]string{
	resume.StatusInWork:    "В работе",
	resume.StatusScreening: "Скрининг",
	resume.StatusInterview: "Интервью",
	resume.StatusRejected:  "Отказ",
	resume.StatusOffer:     "Оффер",
}

var InterestLabels = map[resume.InterestInJob]string{
	resume.InterestLooking:    "Ищет работу",
	resume.InterestNotLooking: "Не ищет работу",
	resume.InterestConsiders:  "Рассматривает предложения",
	resume.InterestDecides:    "Получил оффер, принимает решение",
}

var GenderLabels = map[resume.Gender]string{
	resume.GenderMale:   "Мужской",
	resume.GenderFemale: "Женский",
	resume.GenderOther:  "Другой",
}

var DegreeLabels = map[resume.Degree]string{
	resume.DegreeIncompletePrimary:   "Неоконченное начальное",
	resume.DegreePrimary:             "Начальное",
	resume.DegreeSecondary:           "Среднее",
	resume.DegreeIncompleteSecondary: "Неоконченное среднее",
	resume.DegreeSecondaryVocational: "Среднее специальное",
	resume.DegreeIncompleteHigher:    "Неоконченное высшее",
	resume.DegreeHigher:              "Высшее",
	resume.DegreeBachelor:            "Бакалавр",
	resume.DegreeMaster:              "Магистр",
	resume.DegreePhD:                 "Кандидат наук",
}
