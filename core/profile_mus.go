// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the storage layer. The profile shape is
// flat enough that writing these against the mus-go primitives directly is
// simpler than carrying generator plumbing.
var (
	// IDMUS serializes IDs.
	IDMUS = idMUS{}
	// RoleMUS serializes Roles.
	RoleMUS = roleMUS{}
	// ProfileMUS serializes Profiles.
	ProfileMUS = profileMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type roleMUS struct{}

func (roleMUS) Marshal(role Role, bs []byte) int {
	return varint.Int.Marshal(int(role), bs)
}

func (roleMUS) Unmarshal(bs []byte) (Role, int, error) {
	v, n, err := varint.Int.Unmarshal(bs)
	return Role(v), n, err
}

func (roleMUS) Size(role Role) int {
	return varint.Int.Size(int(role))
}

func (roleMUS) Skip(bs []byte) (int, error) {
	return varint.Int.Skip(bs)
}

type profileMUS struct{}

func (s profileMUS) Marshal(p Profile, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += ord.String.Marshal(p.Name, bs[n:])
	n += RoleMUS.Marshal(p.Role, bs[n:])
	n += ord.String.Marshal(p.WhatISell, bs[n:])
	n += ord.String.Marshal(p.WhatINeed, bs[n:])
	n += marshalStrings(p.PartnershipInterests, bs[n:])
	n += marshalStrings(p.Tags, bs[n:])
	n += marshalTime(p.InsertedAt, bs[n:])
	n += marshalTime(p.UpdatedAt, bs[n:])
	return n
}

func (s profileMUS) Unmarshal(bs []byte) (p Profile, n int, err error) {
	var n1 int
	if p.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if p.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Role, n1, err = RoleMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.WhatISell, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.WhatINeed, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.PartnershipInterests, n1, err = unmarshalStrings(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.Tags, n1, err = unmarshalStrings(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.InsertedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	if p.UpdatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (s profileMUS) Size(p Profile) (size int) {
	size = IDMUS.Size(p.Id)
	size += ord.String.Size(p.Name)
	size += RoleMUS.Size(p.Role)
	size += ord.String.Size(p.WhatISell)
	size += ord.String.Size(p.WhatINeed)
	size += sizeStrings(p.PartnershipInterests)
	size += sizeStrings(p.Tags)
	size += sizeTime(p.InsertedAt)
	size += sizeTime(p.UpdatedAt)
	return size
}

// Length-prefixed string list.

func marshalStrings(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, ErrNegativeLength
	}
	var n1 int
	for i := 0; i < length; i++ {
		var s string
		if s, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return nil, n, err
		}
		n += n1
		v = append(v, s)
	}
	return v, n, nil
}

func sizeStrings(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

// Timestamps travel as Unix microseconds.

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
