package service_test

import (
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/version"
)

func TestSystemService(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("closed database is unhealthy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected error for closed database")
		}
	})

	t.Run("reports a migrated schema", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.GetVersionInfo()
		if err != nil {
			t.Fatalf("GetVersionInfo() returned unexpected error: %v", err)
		}
		if info.AppVersion != version.Version {
			t.Errorf("Expected version %q, got %q", version.Version, info.AppVersion)
		}
		if info.DbVersion != "2" {
			t.Errorf("Expected db version 2, got %q", info.DbVersion)
		}
		if info.MigrationNeeded || info.MigrationMessage != nil {
			t.Errorf("Expected no migration needed, got %+v", info)
		}
	})
}
