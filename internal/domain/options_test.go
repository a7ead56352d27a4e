package domain

import "testing"

func TestToggleOptionAddRemove(t *testing.T) {
	sel := ToggleOption(nil, OptionHotels)
	if len(sel) != 1 || sel[0] != OptionHotels {
		t.Fatalf("toggle on gagal: %v", sel)
	}
	sel = ToggleOption(sel, OptionHotels)
	if len(sel) != 0 {
		t.Fatalf("toggle off gagal: %v", sel)
	}
	if got := ToggleOption(sel, "tidak-ada"); len(got) != 0 {
		t.Fatalf("id di luar katalog harus diabaikan: %v", got)
	}
}

func TestOptionDisabledByCategoryOverlap(t *testing.T) {
	sel := []string{OptionFullPackage} // visa+transport+tickets+hotel

	for _, id := range []string{OptionHotels, OptionTickets, OptionVisaTransp, OptionOnlyVisa} {
		if !OptionDisabled(sel, id) {
			t.Fatalf("%s harus disabled saat vtth terpilih", id)
		}
		if got := ToggleOption(sel, id); len(got) != 1 {
			t.Fatalf("menyalakan option disabled harus ditolak: %v", got)
		}
	}

	// option yang sudah terpilih tidak pernah disabled
	if OptionDisabled(sel, OptionFullPackage) {
		t.Fatalf("option terpilih harus tetap bisa dimatikan")
	}
}

func TestDeriveFlags(t *testing.T) {
	f := DeriveFlags([]string{OptionVisaTranspHt})
	if !f.AddVisaPrice || f.OnlyVisa || f.FullPackage {
		t.Fatalf("vth harus AddVisaPrice saja: %+v", f)
	}

	f = DeriveFlags([]string{OptionOnlyVisa})
	if !f.OnlyVisa || f.AddVisaPrice {
		t.Fatalf("onlyvisa tidak boleh menyalakan AddVisaPrice: %+v", f)
	}

	f = DeriveFlags([]string{OptionFullPackage})
	if !f.FullPackage || f.AddVisaPrice {
		t.Fatalf("vtth memakai jalur full package: %+v", f)
	}
}

func TestSelfHotelLocked(t *testing.T) {
	if !SelfHotelLocked([]string{OptionVisaTransp}) {
		t.Fatalf("vt tanpa h harus mengunci self-hotel")
	}
	if SelfHotelLocked([]string{OptionVisaTransp, OptionHotels}) {
		t.Fatalf("vt + h tidak mengunci self-hotel")
	}
}

func TestClearedCategories(t *testing.T) {
	before := []string{OptionVisaTranspHt}
	after := []string{OptionOnlyVisa}

	cleared := ClearedCategories(before, after)
	want := map[ServiceCategory]bool{ServiceTransport: true, ServiceHotel: true}
	if len(cleared) != 2 {
		t.Fatalf("cleared = %v, harus transport+hotel", cleared)
	}
	for _, svc := range cleared {
		if !want[svc] {
			t.Fatalf("kategori %s tidak seharusnya ter-clear", svc)
		}
	}
}
