package domain

// PassengerCounts menyimpan jumlah penumpang per kategori umur.
// Invariannya: semua nilai >= 0 dan infants <= adults, dijaga pada saat
// increment/decrement, bukan hanya saat submit.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

const (
	PaxAdult  = "adult"
	PaxChild  = "child"
	PaxInfant = "infant"
)

// Total mengembalikan seluruh penumpang termasuk infant.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// TotalPaying mengembalikan adults+children; infant tidak dihitung
// pada matching bracket type-2 maupun biaya hotel/food/ziarat.
func (p PassengerCounts) TotalPaying() int {
	return p.Adults + p.Children
}

// Valid memeriksa invarian tanpa mengubah apa pun.
func (p PassengerCounts) Valid() bool {
	return p.Adults >= 0 && p.Children >= 0 && p.Infants >= 0 && p.Infants <= p.Adults
}

// Increment menaikkan satu kategori. Operasi yang melanggar invarian ditolak
// dan counts tidak berubah.
func (p *PassengerCounts) Increment(kind string) error {
	next := *p
	switch kind {
	case PaxAdult:
		next.Adults++
	case PaxChild:
		next.Children++
	case PaxInfant:
		next.Infants++
	default:
		return ValidationError{Field: "kind", Msg: "kategori penumpang tidak dikenal"}
	}
	if !next.Valid() {
		return ValidationError{Field: "infants", Msg: "jumlah infant tidak boleh melebihi jumlah dewasa"}
	}
	*p = next
	return nil
}

// Decrement menurunkan satu kategori dengan aturan yang sama.
func (p *PassengerCounts) Decrement(kind string) error {
	next := *p
	switch kind {
	case PaxAdult:
		next.Adults--
	case PaxChild:
		next.Children--
	case PaxInfant:
		next.Infants--
	default:
		return ValidationError{Field: "kind", Msg: "kategori penumpang tidak dikenal"}
	}
	if !next.Valid() {
		if next.Infants > next.Adults {
			return ValidationError{Field: "infants", Msg: "jumlah infant tidak boleh melebihi jumlah dewasa"}
		}
		return ValidationError{Field: "kind", Msg: "jumlah penumpang tidak boleh negatif"}
	}
	*p = next
	return nil
}
