package domain

import "strings"

// environmentRules are checked in order; the first rule with a matching
// substring wins.
var environmentRules = []struct {
	env     Environment
	needles []string
}{
	{EnvironmentDev, []string{"dev", "development"}},
	{EnvironmentProd, []string{"prod", "production"}},
	{EnvironmentE2E, []string{"e2e", "test"}},
}

// DetectEnvironment derives the environment tag from a topic name using a
// case-insensitive substring match. Returns nil when nothing matches.
func DetectEnvironment(topicName string) *Environment {
	lower := strings.ToLower(topicName)
	for _, rule := range environmentRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				env := rule.env
				return &env
			}
		}
	}
	return nil
}
