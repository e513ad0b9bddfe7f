// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"encoding/xml"
	"fmt"
)

// Relationship is one entry of a .docx relationship part. Targets are
// relative to the word/ directory unless rooted; TargetMode "External"
// marks targets outside the archive.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type relationshipList struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// parseRelationships decodes a relationship part into a lookup by id.
func parseRelationships(data []byte) (map[string]Relationship, error) {
	var list relationshipList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse relationships: %w", err)
	}
	rels := make(map[string]Relationship, len(list.Relationships))
	for _, rel := range list.Relationships {
		rels[rel.ID] = rel
	}
	return rels, nil
}
