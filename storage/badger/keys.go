package badger

import (
	"encoding/binary"

	"github.com/poiesic/matchbook/core"
)

// Key prefixes for different data types
const (
	profilePrefix     = "prof"
	profileNamePrefix = "profname"
	profileRolePrefix = "profrole"
	profileIDSeq      = "profseq"
)

// makeProfileKey generates a key for a profile by ID. The ID is written
// in BigEndian order so lexicographic iteration yields insertion-ID order.
func makeProfileKey(id core.ID) []byte {
	prefix := profilePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeProfileNameKey generates a key for the unique name index.
// Format: prefix:name
func makeProfileNameKey(name string) []byte {
	return []byte(profileNamePrefix + ":" + name)
}

// makeProfileRoleKey generates a composite key for the role index.
// Format: prefix:role:id, with the ID in BigEndian order.
func makeProfileRoleKey(role core.Role, id core.ID) []byte {
	prefix := profileRolePrefix + ":"
	buf := make([]byte, len(prefix)+1+8)
	offset := copy(buf, prefix)
	buf[offset] = byte(role)
	offset++
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialProfileRoleKey generates the iteration prefix for one role.
func makePartialProfileRoleKey(role core.Role) []byte {
	prefix := profileRolePrefix + ":"
	buf := make([]byte, len(prefix)+1)
	offset := copy(buf, prefix)
	buf[offset] = byte(role)
	return buf
}
