package domain

import "testing"

func TestPassengerIncrementDecrement(t *testing.T) {
	p := PassengerCounts{}

	if err := p.Increment(PaxAdult); err != nil {
		t.Fatalf("increment adult error: %v", err)
	}
	if err := p.Increment(PaxInfant); err != nil {
		t.Fatalf("infant <= adults harus boleh: %v", err)
	}

	// infant kedua melanggar infants <= adults
	if err := p.Increment(PaxInfant); err == nil {
		t.Fatalf("infant melebihi adults harus ditolak")
	}
	if p.Adults != 1 || p.Infants != 1 {
		t.Fatalf("counts berubah padahal operasi ditolak: %+v", p)
	}

	// menurunkan adult saat infant masih 1 juga melanggar
	if err := p.Decrement(PaxAdult); err == nil {
		t.Fatalf("decrement adult yang merusak invarian harus ditolak")
	}
	if p.Adults != 1 {
		t.Fatalf("counts berubah padahal operasi ditolak: %+v", p)
	}
}

func TestPassengerDecrementBelowZero(t *testing.T) {
	p := PassengerCounts{}
	if err := p.Decrement(PaxChild); err == nil {
		t.Fatalf("jumlah negatif harus ditolak")
	}
	if p.Children != 0 {
		t.Fatalf("counts berubah padahal operasi ditolak: %+v", p)
	}
}

func TestPassengerUnknownKind(t *testing.T) {
	p := PassengerCounts{Adults: 1}
	if err := p.Increment("senior"); err == nil {
		t.Fatalf("kategori tidak dikenal harus ditolak")
	}
}
