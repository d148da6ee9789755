package identity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Role is the coarse user category. Admins bypass route checks.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

var AllRoles = []Role{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// RolePresets maps a role to its default allowed routes
type RolePresets map[Role][]string

// DefaultRolePresets is used when no roles file is configured
func DefaultRolePresets() RolePresets {
	return RolePresets{
		RoleAdmin:    {"/"},
		RoleManager:  {"/customer", "/transport", "/printer", "/curve", "/profile", "/diecutblock", "/serviceorder", "/replacement", "/invoice", "/channel", "/notification", "/pricing", "/report"},
		RoleOperator: {"/customer", "/printer", "/curve", "/profile", "/diecutblock", "/serviceorder", "/replacement", "/notification", "/pricing"},
		RoleViewer:   {"/serviceorder", "/notification"},
	}
}

// RoutesFor returns a copy of the preset for role
func (p RolePresets) RoutesFor(role Role) []string {
	routes := p[role]
	out := make([]string, len(routes))
	copy(out, routes)
	return out
}

type rolesFile struct {
	Roles map[string]struct {
		Routes []string `yaml:"routes"`
	} `yaml:"roles"`
}

// ParseRolePresets decodes a roles YAML document:
//
//	roles:
//	  operator:
//	    routes: [/customer, /serviceorder]
func ParseRolePresets(data []byte) (RolePresets, error) {
	var f rolesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse role presets: %w", err)
	}
	presets := make(RolePresets, len(f.Roles))
	for name, def := range f.Roles {
		role := Role(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("parse role presets: unknown role %q", name)
		}
		routes, err := NormalizeRoutes(def.Routes)
		if err != nil {
			return nil, fmt.Errorf("parse role presets: role %s: %w", name, err)
		}
		presets[role] = routes
	}
	return presets, nil
}

// LoadRolePresets reads presets from path, falling back to the defaults
// when path is empty. Roles missing from the file keep their default.
func LoadRolePresets(path string) (RolePresets, error) {
	presets := DefaultRolePresets()
	if path == "" {
		return presets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role presets: %w", err)
	}
	loaded, err := ParseRolePresets(data)
	if err != nil {
		return nil, err
	}
	for role, routes := range loaded {
		presets[role] = routes
	}
	return presets, nil
}
