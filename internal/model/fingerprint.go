package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainSnapshot prefixes snapshot fingerprints. The version suffix allows
// the algorithm to change without colliding with older fingerprints.
const DomainSnapshot = "schedview/snapshot/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes a content hash over the given collections in their
// given order. Two snapshots with the same entities in the same order share
// a fingerprint regardless of how they were loaded.
func Fingerprint(events []Event, categories []Category, rooms []Room, streams []Stream) (string, error) {
	obj := map[string]any{
		"events":     mapSlice(events, eventObject),
		"categories": mapSlice(categories, categoryObject),
		"rooms":      mapSlice(rooms, roomObject),
		"streams":    mapSlice(streams, streamObject),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSnapshot, canonical), nil
}

func mapSlice[T any](in []T, f func(T) map[string]any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func eventObject(e Event) map[string]any {
	cats := make([]any, len(e.Categories))
	for i, c := range e.Categories {
		cats[i] = c
	}
	speakers := make([]any, len(e.Speakers))
	for i, s := range e.Speakers {
		speakers[i] = s
	}
	obj := map[string]any{
		"id":          e.ID,
		"title":       e.Title,
		"description": e.Description,
		"slot":        e.Slot,
		"start":       e.Start,
		"end":         e.End,
		"speakers":    speakers,
		"categories":  cats,
	}
	if id, ok := e.RoomID(); ok {
		obj["room"] = id
	}
	if id, ok := e.StreamID(); ok {
		obj["stream"] = id
	}
	return obj
}

func categoryObject(c Category) map[string]any {
	return map[string]any{"id": c.ID, "name": c.Name, "color": c.Color}
}

func roomObject(r Room) map[string]any {
	return map[string]any{"id": r.ID, "name": r.Name, "floor": r.Floor, "capacity": r.Capacity}
}

func streamObject(s Stream) map[string]any {
	return map[string]any{"id": s.ID, "name": s.Name, "color": s.Color}
}
