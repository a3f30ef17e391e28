package main

import (
	"fmt"
	"strings"

	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/sortutil"
)

// parseOrder turns "name:dir" values into sort keys. The direction defaults
// to ascending.
func parseOrder(values []string) ([]sortutil.Key, error) {
	keys := make([]sortutil.Key, 0, len(values))
	for _, value := range values {
		name, dir, hasDir := strings.Cut(value, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid --order %q: missing attribute name", value)
		}
		key := sortutil.Asc(name)
		if hasDir {
			d, err := sortutil.ParseDirection(dir)
			if err != nil {
				return nil, fmt.Errorf("invalid --order %q: %w", value, err)
			}
			key.Direction = d
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// parseAliases turns "Type=alias:attribute" values into an alias decorator.
// The type is split at the last '=' since type IRIs may contain one.
func parseAliases(values []string) (grom.AliasDecorator, error) {
	aliases := grom.AliasDecorator{}
	for _, value := range values {
		i := strings.LastIndex(value, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid --alias %q: want Type=alias:attribute", value)
		}
		typ := strings.TrimSpace(value[:i])
		alias, target, ok := strings.Cut(value[i+1:], ":")
		alias, target = strings.TrimSpace(alias), strings.TrimSpace(target)
		if !ok || alias == "" || target == "" {
			return nil, fmt.Errorf("invalid --alias %q: want Type=alias:attribute", value)
		}
		if aliases[typ] == nil {
			aliases[typ] = map[string]string{}
		}
		aliases[typ][alias] = target
	}
	return aliases, nil
}
