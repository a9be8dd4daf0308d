package config

import (
	"context"
	"strings"

	"gopkg.in/ini.v1"
)

// Registry enumerates the profiles available in an AWS shared config
// file (~/.aws/config by default).
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) == 0 && name != "default" {
			continue
		}
		// Shared config names sections "profile <name>", except default.
		profiles = append(profiles, strings.TrimPrefix(name, "profile "))
	}
	return profiles, nil
}
