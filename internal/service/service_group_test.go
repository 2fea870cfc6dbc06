// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-small-safe/internal/crypto"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/internal/mock"
	"github.com/MKhiriev/go-small-safe/internal/safe"
	"github.com/MKhiriev/go-small-safe/internal/store"
	"github.com/MKhiriev/go-small-safe/models"
)

// memorySafes backs a MockSafeRepository with a map so that group operations
// run against a real codec.
type memorySafes struct {
	mu     sync.Mutex
	safes  map[string][]byte
	writes int
}

func newMemorySafeRepository(ctrl *gomock.Controller) (*mock.MockSafeRepository, *memorySafes) {
	mem := &memorySafes{safes: map[string][]byte{}}
	repo := mock.NewMockSafeRepository(ctrl)

	repo.EXPECT().CreateSafe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string, envelope []byte) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			if _, ok := mem.safes[name]; ok {
				return store.ErrSafeAlreadyExists
			}
			mem.safes[name] = append([]byte(nil), envelope...)
			return nil
		}).AnyTimes()

	repo.EXPECT().GetSafe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (models.SafeAccount, error) {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			envelope, ok := mem.safes[name]
			if !ok {
				return models.SafeAccount{}, store.ErrSafeNotFound
			}
			return models.SafeAccount{Name: name, EncryptedSafeDb: envelope}, nil
		}).AnyTimes()

	repo.EXPECT().UpdateSafe(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string, envelope []byte) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			if _, ok := mem.safes[name]; !ok {
				return store.ErrSafeNotFound
			}
			mem.safes[name] = append([]byte(nil), envelope...)
			mem.writes++
			return nil
		}).AnyTimes()

	return repo, mem
}

func (m *memorySafes) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

type groupFixture struct {
	svc   *groupService
	safes SafeReadWriteService
	mem   *memorySafes
	ctx   context.Context
}

func newGroupFixture(t *testing.T) *groupFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo, mem := newMemorySafeRepository(ctrl)

	codec := safe.NewCodec(crypto.NewPasswordCipher(crypto.WithIterations(1000)), logger.Nop())
	safes := NewSafeReadWriteService(repo, codec, logger.Nop())
	svc := NewGroupService(safes, logger.Nop()).(*groupService)
	clock := &stepClock{cur: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.Now

	ctx := context.Background()
	require.NoError(t, safes.CreateSafe(ctx, testCreds))

	return &groupFixture{svc: svc, safes: safes, mem: mem, ctx: ctx}
}

func (f *groupFixture) addGroup(t *testing.T, name string) models.Group {
	t.Helper()
	g, err := f.svc.AddGroup(f.ctx, testCreds, name)
	require.NoError(t, err)
	return g
}

func (f *groupFixture) addEntry(t *testing.T, groupID uuid.UUID, name, value string) models.Entry {
	t.Helper()
	e, err := f.svc.AddEntry(f.ctx, testCreds, groupID, name, value)
	require.NoError(t, err)
	return e
}

func (f *groupFixture) rawGroups(t *testing.T) []models.Group {
	t.Helper()
	groups, err := f.safes.ReadGroups(f.ctx, testCreds)
	require.NoError(t, err)
	return groups
}

func groupNames(groups []models.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func entryNames(entries []models.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ── Groups ───────────────────────────────────────────────────────────────────

func TestGroupService_AddGroup(t *testing.T) {
	f := newGroupFixture(t)

	g := f.addGroup(t, "  Personal ")
	assert.Equal(t, "Personal", g.Name)
	assert.True(t, g.PreserveHistory)
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.NotNil(t, g.Entries)

	groups, err := f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, g.ID, groups[0].ID)
}

func TestGroupService_AddGroup_Rejects(t *testing.T) {
	f := newGroupFixture(t)
	f.addGroup(t, "Personal")
	writes := f.mem.writeCount()

	_, err := f.svc.AddGroup(f.ctx, testCreds, "PERSONAL")
	assert.ErrorIs(t, err, ErrDuplicateGroup)

	_, err = f.svc.AddGroup(f.ctx, testCreds, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Equal(t, writes, f.mem.writeCount(), "failed operations must not rewrite the safe")
}

func TestGroupService_AddGroup_NameFreedByDelete(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Work")
	require.NoError(t, f.svc.DeleteGroup(f.ctx, testCreds, g.ID))

	again := f.addGroup(t, "work")
	assert.NotEqual(t, g.ID, again.ID)
}

func TestGroupService_DeleteGroup_Tombstones(t *testing.T) {
	f := newGroupFixture(t)
	keep := f.addGroup(t, "Keep")
	drop := f.addGroup(t, "Drop")

	require.NoError(t, f.svc.DeleteGroup(f.ctx, testCreds, drop.ID))

	groups, err := f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep"}, groupNames(groups))
	assert.Equal(t, keep.ID, groups[0].ID)

	raw := f.rawGroups(t)
	require.Len(t, raw, 2)
	require.NotNil(t, raw[1].DeletedAt)
	assert.Equal(t, drop.ID, raw[1].ID)

	assert.ErrorIs(t, f.svc.DeleteGroup(f.ctx, testCreds, drop.ID), ErrGroupNotFound)
	assert.ErrorIs(t, f.svc.DeleteGroup(f.ctx, testCreds, uuid.New()), ErrGroupNotFound)
}

func TestGroupService_MoveGroup(t *testing.T) {
	f := newGroupFixture(t)
	a := f.addGroup(t, "A")
	f.addGroup(t, "B")
	c := f.addGroup(t, "C")

	require.NoError(t, f.svc.MoveGroup(f.ctx, testCreds, c.ID, nil))
	groups, err := f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, groupNames(groups))

	require.NoError(t, f.svc.MoveGroup(f.ctx, testCreds, c.ID, &a.ID))
	groups, err = f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, groupNames(groups))

	missing := uuid.New()
	assert.ErrorIs(t, f.svc.MoveGroup(f.ctx, testCreds, c.ID, &missing), ErrGroupNotFound)
	assert.ErrorIs(t, f.svc.MoveGroup(f.ctx, testCreds, missing, nil), ErrGroupNotFound)
}

// ── Entries ──────────────────────────────────────────────────────────────────

func TestGroupService_AddEntry(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")

	e := f.addEntry(t, g.ID, "mail", "hunter2")
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	entries, err := f.svc.ListEntries(f.ctx, testCreds, g.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hunter2", entries[0].Value)

	_, err = f.svc.AddEntry(f.ctx, testCreds, g.ID, "empty", "")
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = f.svc.AddEntry(f.ctx, testCreds, uuid.New(), "mail", "v")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupService_UpdateEntry_PreservesHistory(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")
	e := f.addEntry(t, g.ID, "mail", "v1")

	updated, err := f.svc.UpdateEntry(f.ctx, testCreds, g.ID, e.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Value)
	assert.True(t, updated.UpdatedAt.After(e.UpdatedAt))

	_, err = f.svc.UpdateEntry(f.ctx, testCreds, g.ID, e.ID, "v3")
	require.NoError(t, err)

	history, err := f.svc.EntryHistory(f.ctx, testCreds, g.ID, e.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "v1", history[0].Value)
	assert.Equal(t, "v2", history[1].Value)

	value, err := f.svc.GetEntryValue(f.ctx, testCreds, g.ID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "v3", value)
}

func TestGroupService_UpdateEntry_WithoutHistory(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Scratch")
	e := f.addEntry(t, g.ID, "note", "v1")

	groups := f.rawGroups(t)
	groups[0].PreserveHistory = false
	require.NoError(t, f.safes.WriteGroups(f.ctx, testCreds, groups))

	_, err := f.svc.UpdateEntry(f.ctx, testCreds, g.ID, e.ID, "v2")
	require.NoError(t, err)

	history, err := f.svc.EntryHistory(f.ctx, testCreds, g.ID, e.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGroupService_UpdateEntry_Rejects(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")
	e := f.addEntry(t, g.ID, "mail", "v1")

	_, err := f.svc.UpdateEntry(f.ctx, testCreds, g.ID, e.ID, "")
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = f.svc.UpdateEntry(f.ctx, testCreds, g.ID, uuid.New(), "v2")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGroupService_DeleteEntry(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")
	e := f.addEntry(t, g.ID, "mail", "v1")
	other := f.addEntry(t, g.ID, "bank", "pin")
	_, err := f.svc.UpdateEntry(f.ctx, testCreds, g.ID, e.ID, "v2")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteEntry(f.ctx, testCreds, g.ID, e.ID))

	entries, err := f.svc.ListEntries(f.ctx, testCreds, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bank"}, entryNames(entries))
	assert.Equal(t, other.ID, entries[0].ID)

	_, err = f.svc.GetEntryValue(f.ctx, testCreds, g.ID, e.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	history, err := f.svc.EntryHistory(f.ctx, testCreds, g.ID, e.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1, "history survives deletion")

	raw := f.rawGroups(t)
	require.Len(t, raw[0].Entries, 2)
	assert.NotNil(t, raw[0].Entries[0].DeletedAt)

	assert.ErrorIs(t, f.svc.DeleteEntry(f.ctx, testCreds, g.ID, e.ID), ErrEntryNotFound)
}

func TestGroupService_MoveEntry(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")
	a := f.addEntry(t, g.ID, "a", "1")
	f.addEntry(t, g.ID, "b", "2")
	c := f.addEntry(t, g.ID, "c", "3")

	require.NoError(t, f.svc.MoveEntry(f.ctx, testCreds, g.ID, a.ID, &c.ID))
	entries, err := f.svc.ListEntries(f.ctx, testCreds, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, entryNames(entries))

	require.NoError(t, f.svc.MoveEntry(f.ctx, testCreds, g.ID, c.ID, nil))
	entries, err = f.svc.ListEntries(f.ctx, testCreds, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, entryNames(entries))

	missing := uuid.New()
	assert.ErrorIs(t, f.svc.MoveEntry(f.ctx, testCreds, g.ID, a.ID, &missing), ErrEntryNotFound)
}

func TestGroupService_SortEntries(t *testing.T) {
	f := newGroupFixture(t)
	work := f.addGroup(t, "work")
	f.addGroup(t, "Banking")
	f.addEntry(t, work.ID, "zoom", "1")
	f.addEntry(t, work.ID, "Atlassian", "2")
	f.addEntry(t, work.ID, "github", "3")

	require.NoError(t, f.svc.SortEntries(f.ctx, testCreds, work.ID))

	groups, err := f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	assert.Equal(t, []string{"Banking", "work"}, groupNames(groups))
	assert.Equal(t, []string{"Atlassian", "github", "zoom"}, entryNames(groups[1].Entries))

	assert.ErrorIs(t, f.svc.SortEntries(f.ctx, testCreds, uuid.New()), ErrGroupNotFound)
}

func TestGroupService_PurgeEntryHistory(t *testing.T) {
	f := newGroupFixture(t)
	g := f.addGroup(t, "Personal")
	a := f.addEntry(t, g.ID, "a", "a1")
	b := f.addEntry(t, g.ID, "b", "b1")
	for _, step := range []struct {
		id    uuid.UUID
		value string
	}{{a.ID, "a2"}, {b.ID, "b2"}, {a.ID, "a3"}} {
		_, err := f.svc.UpdateEntry(f.ctx, testCreds, g.ID, step.id, step.value)
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.PurgeEntryHistory(f.ctx, testCreds, g.ID, a.ID))

	history, err := f.svc.EntryHistory(f.ctx, testCreds, g.ID, a.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = f.svc.EntryHistory(f.ctx, testCreds, g.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "b1", history[0].Value)

	_, err = f.svc.EntryHistory(f.ctx, testCreds, g.ID, uuid.New())
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGroupService_Find(t *testing.T) {
	f := newGroupFixture(t)
	mail := f.addGroup(t, "Mail accounts")
	bank := f.addGroup(t, "Bank")
	gone := f.addGroup(t, "Old mail")
	f.addEntry(t, mail.ID, "work", "1")
	f.addEntry(t, bank.ID, "Gmail backup codes", "2")
	dropped := f.addEntry(t, bank.ID, "mailbox pin", "3")
	require.NoError(t, f.svc.DeleteEntry(f.ctx, testCreds, bank.ID, dropped.ID))
	require.NoError(t, f.svc.DeleteGroup(f.ctx, testCreds, gone.ID))

	result, err := f.svc.Find(f.ctx, testCreds, models.FindRequest{Query: " MAIL "})
	require.NoError(t, err)
	assert.Equal(t, "MAIL", result.Query)
	assert.Equal(t, []string{"Mail accounts"}, groupNames(result.Groups))
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Gmail backup codes", result.Entries[0].Entry.Name)
	assert.Equal(t, bank.ID, result.Entries[0].Group.ID)

	_, err = f.svc.Find(f.ctx, testCreds, models.FindRequest{Query: ""})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestGroupService_WrongPassword(t *testing.T) {
	f := newGroupFixture(t)
	f.addGroup(t, "Personal")

	_, err := f.svc.ListGroups(f.ctx, testCreds.WithPassword("wrong password"))
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	_, err = f.svc.AddGroup(f.ctx, testCreds.WithPassword("wrong password"), "Work")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestGroupService_ConcurrentAdds(t *testing.T) {
	f := newGroupFixture(t)

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := f.svc.AddGroup(f.ctx, testCreds, name)
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	groups, err := f.svc.ListGroups(f.ctx, testCreds)
	require.NoError(t, err)
	assert.Len(t, groups, 4)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestMoveAfter(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	key := func(id uuid.UUID) uuid.UUID { return id }
	missing := uuid.New()

	tests := []struct {
		name string
		id   uuid.UUID
		prev *uuid.UUID
		want []uuid.UUID
	}{
		{name: "to front", id: ids[2], prev: nil, want: []uuid.UUID{ids[2], ids[0], ids[1], ids[3]}},
		{name: "after first", id: ids[3], prev: &ids[0], want: []uuid.UUID{ids[0], ids[3], ids[1], ids[2]}},
		{name: "after itself goes last", id: ids[1], prev: &ids[1], want: []uuid.UUID{ids[0], ids[2], ids[3], ids[1]}},
		{name: "unknown prev goes last", id: ids[0], prev: &missing, want: []uuid.UUID{ids[1], ids[2], ids[3], ids[0]}},
		{name: "unknown id is a no-op", id: missing, prev: nil, want: ids},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveAfter(ids, key, tt.id, tt.prev))
		})
	}
}
