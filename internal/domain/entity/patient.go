package entity

const (
	MinAge = 0
	MaxAge = 120
)

// PatientRecord данные пациента из формы
type PatientRecord struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewPatientRecord создаёт запись пациента, возраст приводится к допустимому диапазону.
func NewPatientRecord(name string, age int, phone, address string) PatientRecord {
	return PatientRecord{
		Name:    name,
		Age:     ClampAge(age),
		Phone:   phone,
		Address: address,
	}
}

// ClampAge ограничивает возраст границами поля ввода.
func ClampAge(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > MaxAge {
		return MaxAge
	}
	return age
}
