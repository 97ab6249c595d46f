package main

import (
	"encoding/json"
	"fmt"
	"os"

	filekv "github.com/fitpoint-gym/member-client/internal/adapters/file/kvstore"
	"github.com/fitpoint-gym/member-client/internal/adapters/httpstore"
	memrepo "github.com/fitpoint-gym/member-client/internal/adapters/memory/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/app/dashboard"
	"github.com/fitpoint-gym/member-client/internal/app/login"
	"github.com/fitpoint-gym/member-client/internal/domain"
	platformclock "github.com/fitpoint-gym/member-client/internal/platform/clock"
	"github.com/fitpoint-gym/member-client/internal/platform/config"
	"github.com/fitpoint-gym/member-client/internal/platform/deviceid"
	memberrepoport "github.com/fitpoint-gym/member-client/internal/ports/out/memberrepo"
	"github.com/fitpoint-gym/member-client/internal/session"
)

// app wires the flows for one command invocation.
type app struct {
	cfg      *config.Config
	sessions *session.Store
	flows    *login.Service
	metrics  *dashboard.Metrics
}

func buildApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}

	kv, err := filekv.Open(cfg.SessionFile())
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	sessions := session.New(kv)

	repo, err := buildMemberRepo(cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		sessions: sessions,
		flows:    login.NewService(repo, sessions),
		metrics:  dashboard.NewMetrics(platformclock.NewSystemClock()),
	}, nil
}

func buildMemberRepo(cfg *config.Config) (memberrepoport.Repository, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		repo := memrepo.NewRepo()
		if cfg.Store.SeedFile != "" {
			if err := seedMemberRepo(repo, cfg.Store.SeedFile); err != nil {
				return nil, fmt.Errorf("seeding memory store: %w", err)
			}
		}
		return repo, nil
	case config.BackendHTTP:
		instanceID, err := deviceid.Load(cfg.DeviceIDFile())
		if err != nil {
			return nil, err
		}
		return httpstore.New(httpstore.Config{
			BaseURL:    cfg.Store.BaseURL,
			Collection: cfg.Store.Collection,
			ReplicaDir: cfg.ReplicaDir(),
			InstanceID: instanceID,
			Timeout:    cfg.Store.Timeout.Std(),
		}), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %q or %q)",
			cfg.Store.Backend, config.BackendHTTP, config.BackendMemory)
	}
}

// seedMemberRepo loads a fakestore-style seed file, mapping member ids to raw
// record payloads, into the in-process store.
func seedMemberRepo(repo *memrepo.Repo, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}
	for id, body := range raw {
		m, err := httpstore.DecodeMember(body)
		if err != nil {
			return fmt.Errorf("record %q: %w", id, err)
		}
		repo.Put(domain.MemberID(id), m)
	}
	return nil
}

// requireStore guards commands that need a resolvable member store.
func (a *app) requireStore() error {
	if a.cfg.Store.Backend == config.BackendHTTP && a.cfg.Store.BaseURL == "" {
		return fmt.Errorf("remote store URL not configured (set store.base_url in the config file or GYMCLIENT_STORE_URL)")
	}
	return nil
}
