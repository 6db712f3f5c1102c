package domain

import "strings"

// SearchClients filters corpus by a case-insensitive substring match on legal
// name, trade name, tax id, contact name and email. An empty term returns
// corpus unchanged.
func SearchClients(term string, corpus []Client) []Client {
	needle := normalizeTerm(term)
	if needle == "" {
		return corpus
	}
	out := make([]Client, 0, len(corpus))
	for _, c := range corpus {
		if matchAny(needle, c.LegalName, c.TradeName, c.TaxID, c.ContactName, c.Email) {
			out = append(out, c)
		}
	}
	return out
}

// SearchUsers filters corpus on name, username, email and role.
func SearchUsers(term string, corpus []User) []User {
	needle := normalizeTerm(term)
	if needle == "" {
		return corpus
	}
	out := make([]User, 0, len(corpus))
	for _, u := range corpus {
		if matchAny(needle, u.Name, u.Username, u.Email, u.Role) {
			out = append(out, u)
		}
	}
	return out
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func matchAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
