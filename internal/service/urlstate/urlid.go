package urlstate

import (
	"strings"

	"gridnav/internal/domain/models/navigation"
)

const snapshotMarker = "v="

// snapshotEscapes are left alone by encodeURIComponent but must not appear
// in an encoded snapshot id: "~" separates url id parts, "_" is our escape
// character, and the rest are awkward in file names.
const snapshotEscapes = "_.!~*'()"

// ParseURLID splits a document id of the form
//
//	trunkId[~forkId[~forkUserId]][~v=<snapshotId>]
//
// into its parts. Segments containing "=" never count as trunk or fork
// segments; a "v=" segment carries the snapshot id wherever it appears.
// No validation is done: an id made only of marker segments yields an
// empty TrunkID.
func ParseURLID(raw string) navigation.URLIDParts {
	var parts navigation.URLIDParts
	var bare []string
	for _, segment := range strings.Split(raw, "~") {
		if !strings.Contains(segment, "=") {
			bare = append(bare, segment)
			continue
		}
		if encoded, ok := strings.CutPrefix(segment, snapshotMarker); ok {
			parts.SnapshotID = decodeURIComponent(strings.ReplaceAll(encoded, "_", "%"))
		}
	}

	if len(bare) > 0 {
		parts.TrunkID = bare[0]
	}
	if len(bare) > 1 {
		parts.ForkID = bare[1]
	}
	if len(bare) > 2 {
		parts.ForkUserID = navigation.Int(navigation.ParseInt(bare[2]))
	}
	return parts
}

// BuildURLID is the inverse of ParseURLID. The snapshot id is
// percent-encoded, then "_" stands in for "%" so the result stays safe for
// ids and file names.
func BuildURLID(parts navigation.URLIDParts) string {
	segments := []string{parts.TrunkID}
	if parts.ForkID != "" {
		segments = append(segments, parts.ForkID)
	}
	if parts.ForkUserID != nil {
		segments = append(segments, navigation.FormatInt(*parts.ForkUserID))
	}

	token := strings.Join(segments, "~")
	if parts.SnapshotID != "" {
		token += "~" + snapshotMarker + encodeSnapshotID(parts.SnapshotID)
	}
	return token
}

func encodeSnapshotID(id string) string {
	encoded := encodeURIComponent(id)

	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		switch {
		case strings.IndexByte(snapshotEscapes, c) >= 0:
			b.WriteByte('_')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		case c == '%':
			b.WriteByte('_')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
