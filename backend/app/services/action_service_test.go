package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"droidsweep/backend/app/models"
	"droidsweep/backend/app/repo"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.UserAction{}, &models.Device{}, &models.MobileAudit{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestFoldDisabled(t *testing.T) {
	actions := []models.UserAction{
		{PackageName: "A", Action: models.ActionDisable},
		{PackageName: "B", Action: models.ActionDisable},
		{PackageName: "A", Action: models.ActionEnable},
	}
	got := FoldDisabled(actions)
	if len(got) != 1 || got[0] != "B" {
		t.Fatalf("FoldDisabled = %v, want [B]", got)
	}
}

func TestFoldDisabledUninstallAndReinstall(t *testing.T) {
	actions := []models.UserAction{
		{PackageName: "A", Action: models.ActionUninstall},
		{PackageName: "B", Action: models.ActionDisable},
		{PackageName: "A", Action: models.ActionReinstall},
		{PackageName: "A", Action: models.ActionUninstall},
	}
	got := FoldDisabled(actions)
	if len(got) != 2 {
		t.Fatalf("FoldDisabled = %v, want two packages", got)
	}
	set := map[string]bool{}
	for _, p := range got {
		set[p] = true
	}
	if !set["A"] || !set["B"] {
		t.Fatalf("FoldDisabled = %v, want A and B", got)
	}
}

func TestRecordAndDisabledPackages(t *testing.T) {
	db := testDB(t)
	svc := NewActionService(repo.NewUserActionRepository(db), repo.NewDeviceRepository(db))

	steps := []struct {
		pkg  string
		kind models.ActionKind
	}{
		{"com.vendor.one", models.ActionDisable},
		{"com.vendor.two", models.ActionDisable},
		{"com.vendor.one", models.ActionEnable},
	}
	for _, s := range steps {
		if err := svc.Record("dev-1", s.pkg, s.kind); err != nil {
			t.Fatalf("Record(%s): %v", s.pkg, err)
		}
	}
	// a second device must not leak into the first's fold
	if err := svc.Record("dev-2", "com.vendor.three", models.ActionDisable); err != nil {
		t.Fatalf("Record: %v", err)
	}

	disabled, err := svc.DisabledPackages("dev-1")
	if err != nil {
		t.Fatalf("DisabledPackages: %v", err)
	}
	if len(disabled) != 1 || disabled[0] != "com.vendor.two" {
		t.Fatalf("DisabledPackages = %v, want [com.vendor.two]", disabled)
	}

	history, err := svc.ForDevice("dev-1")
	if err != nil {
		t.Fatalf("ForDevice: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("ForDevice returned %d rows, want 3", len(history))
	}
}

func TestRecordAttributesDeviceOwner(t *testing.T) {
	db := testDB(t)
	devices := repo.NewDeviceRepository(db)
	if err := devices.Upsert(&models.Device{UUID: "dev-1", Name: "Pixel 7", UserID: 7}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	svc := NewActionService(repo.NewUserActionRepository(db), devices)

	if err := svc.Record("dev-1", "com.vendor.one", models.ActionDisable); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// an unregistered device has no owner to attribute
	if err := svc.Record("dev-ghost", "com.vendor.two", models.ActionDisable); err != nil {
		t.Fatalf("Record: %v", err)
	}

	owned, err := svc.ForUser(7)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(owned) != 1 || owned[0].PackageName != "com.vendor.one" {
		t.Fatalf("ForUser(7) = %v, want the dev-1 row", owned)
	}
	if owned[0].UserID != 7 {
		t.Fatalf("recorded UserID = %d, want 7", owned[0].UserID)
	}

	unowned, err := svc.ForUser(42)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(unowned) != 0 {
		t.Fatalf("ForUser(42) = %v, want none", unowned)
	}
}
