package db

import (
	"context"
	"testing"

	"VideoTube.com/pkg/testutil"
)

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewDB(t)
	Init(conn)
	testutil.SeedUser(t, conn, 1, "alice")
	testutil.SeedUser(t, conn, 2, "bob")

	t.Run("GetUserById", func(t *testing.T) {
		u, err := GetUserById(ctx, 1)
		if err != nil || u == nil || u.UserName != "alice" {
			t.Fatalf("got %+v, %v", u, err)
		}
		missing, err := GetUserById(ctx, 99)
		if err != nil || missing != nil {
			t.Fatalf("missing user: got %+v, %v", missing, err)
		}
	})

	t.Run("CheckUserExistById", func(t *testing.T) {
		ok, err := CheckUserExistById(ctx, 2)
		if err != nil || !ok {
			t.Fatalf("got %v, %v", ok, err)
		}
		ok, _ = CheckUserExistById(ctx, 3)
		if ok {
			t.Fatal("user 3 should not exist")
		}
	})

	t.Run("MGetUsers", func(t *testing.T) {
		users, err := MGetUsers(ctx, []int64{1, 2, 3})
		if err != nil {
			t.Fatalf("MGetUsers: %v", err)
		}
		if len(users) != 2 || users[2].UserName != "bob" {
			t.Fatalf("got %v", users)
		}
	})
}
