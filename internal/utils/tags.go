package utils

import "strings"

// UniqueTagIDs drops blanks and duplicates, keeping first-seen order.
func UniqueTagIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// TagDifference returns the ids of a that are not in b.
func TagDifference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}
	var out []string
	for _, id := range UniqueTagIDs(a) {
		if _, ok := inB[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// TagDiff compares the tag set of an entity before and after an update.
func TagDiff(oldIDs, newIDs []string) (removed, added []string) {
	return TagDifference(oldIDs, newIDs), TagDifference(newIDs, oldIDs)
}
