// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/passwordless-vault/internal/client"
	"github.com/MKhiriev/passwordless-vault/internal/config"
	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/internal/logger"
	"github.com/MKhiriev/passwordless-vault/internal/service"
	"github.com/MKhiriev/passwordless-vault/internal/store"
	"github.com/MKhiriev/passwordless-vault/internal/tui"
	"github.com/MKhiriev/passwordless-vault/internal/utils"
	"github.com/MKhiriev/passwordless-vault/internal/validators"
	"github.com/MKhiriev/passwordless-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vault: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Crypto.MaxFileSizeBytes > 0 {
		crypto.MaxFileSize = cfg.Crypto.MaxFileSizeBytes
	}

	log := logger.NewClientLogger("vault")

	ctx := context.Background()
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	kv := store.NewSQLiteKVStore(db, log)
	persistence := store.NewPersistenceAdapter(kv, log)

	// real WebAuthn PRF hardware is reached through an OS/browser bridge
	// this demo CLI doesn't have; FakeClient stands in so every command
	// below is exercised end-to-end (see internal/client/doc.go).
	authenticator := client.NewFakeClient()

	validator := validators.NewVaultItemValidator()
	uuids := utils.NewUUIDGenerator()

	svc := service.NewVaultService(persistence, authenticator, validator, uuids, log)

	return tui.Run(ctx, svc)
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	fmt.Printf("passwordless-vault %s (built %s, commit %s)\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
