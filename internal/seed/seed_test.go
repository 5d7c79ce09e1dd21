package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/config"
	"github.com/zedhire/zedhire/internal/db"
)

func TestCreateDefaultDataSkipsWithoutAdminEmail(t *testing.T) {
	cfg := &config.Config{}

	err := CreateDefaultData(context.Background(), &db.PostgresDB{}, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("CreateDefaultData() error = %v, want nil when no admin email is configured", err)
	}
}
