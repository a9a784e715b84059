// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierLayersWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "https://flags.example.com"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "https://env.example.com", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// The flag layer wins for the address; the env layer fills the timeout.
	assert.Equal(t, "https://flags.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "https://vault.example.com"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "vault-sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://vault.example.com", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}
	require.NoError(t, valid.validate())

	missingAddr := *valid
	missingAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, missingAddr.validate(), ErrInvalidAdapterConfigs)

	missingDSN := *valid
	missingDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, missingDSN.validate(), ErrInvalidStorageConfigs)

	badInterval := *valid
	badInterval.Workers.SyncInterval = 0
	assert.ErrorIs(t, badInterval.validate(), ErrInvalidWorkerConfigs)
}
