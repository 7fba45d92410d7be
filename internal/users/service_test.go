package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathsmania/backend/internal/store"
)

func newTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	return NewService(st), st
}

func TestRegister_RequiresNameEmailPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []RegisterInput{
		{},
		{Email: "a@b.c", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@b.c"},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestRegister_ReturnsReducedView(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	pub, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Phone: "123", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, pub.ID)
	require.Equal(t, "A", pub.Name)
	require.Equal(t, "a@b.c", pub.Email)

	// full record is persisted, password as given
	doc, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	require.Equal(t, "secret", doc.Users[0].Password)
	require.Equal(t, "123", doc.Users[0].Phone)
	require.False(t, doc.Users[0].CreatedAt.IsZero())
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@b.c", Password: "pw2"})
	require.ErrorIs(t, err, ErrEmailExists)

	// the conflicting attempt must not append a record
	doc, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "A@b.c", Password: "pw"})
	require.NoError(t, err)
}

func TestRegister_UniqueIdentities(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, email := range []string{"a@b.c", "b@b.c", "c@b.c"} {
		pub, err := svc.Register(ctx, RegisterInput{Name: "U", Email: email, Password: "pw"})
		require.NoError(t, err)
		require.False(t, seen[pub.ID], "identity %q reused", pub.ID)
		seen[pub.ID] = true
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)

	pub, err := svc.Login(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, reg.ID, pub.ID)
	require.Equal(t, "A", pub.Name)

	_, err = svc.Login(ctx, "a@b.c", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "never@registered.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
