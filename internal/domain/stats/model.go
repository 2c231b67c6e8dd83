package stats

import "vet-records/internal/domain/records"

type TypeCount struct {
	AnimalType string
	Count      int
}

// UpcomingVaccine es un registro de vacuna con el nombre de su mascota.
type UpcomingVaccine struct {
	Record  records.MedicalRecord
	PetName string
}

// SevereAllergyRow es una fila plana (pet, alergia) antes de agrupar.
type SevereAllergyRow struct {
	PetID       int64
	PetName     string
	AllergyName string
	Reactions   *string
}

type Allergy struct {
	Name      string
	Reactions *string
}

// SevereAllergyGroup junta las alergias severas de una mascota.
type SevereAllergyGroup struct {
	PetID     int64
	PetName   string
	Allergies []Allergy
}

type Dashboard struct {
	TotalPets        int
	PetsByType       []TypeCount
	TotalVaccines    int
	TotalAllergies   int
	UpcomingVaccines []UpcomingVaccine
	SevereAllergies  []SevereAllergyGroup
}
