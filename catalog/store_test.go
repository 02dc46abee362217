package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func navbarDoc(id primitive.ObjectID, name, slug string) bson.D {
	now := primitive.NewDateTimeFromTime(time.Now())
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "slug", Value: slug},
		{Key: "order", Value: 0},
		{Key: "isActive", Value: true},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func TestFindByKeySlugHit(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("slug match resolves without an id fallback", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollNavbarCategories
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			navbarDoc(id, "Cameras", "cameras")))

		nav, err := NavbarCategoryByKey(context.Background(), mt.DB, "cameras")
		require.NoError(mt, err)
		assert.Equal(mt, id, nav.ID)
		assert.Equal(mt, "Cameras", nav.Name)

		finds := startedCommands(mt, "find")
		require.Len(mt, finds, 1)
		slug, ok := finds[0].Lookup("filter", "slug").StringValueOK()
		require.True(mt, ok)
		assert.Equal(mt, "cameras", slug)
	})
}

func TestFindByKeyIDFallback(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown slug falls through to the id lookup", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollNavbarCategories
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				navbarDoc(id, "Cameras", "cameras")),
		)

		nav, err := NavbarCategoryByKey(context.Background(), mt.DB, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, nav.ID)

		finds := startedCommands(mt, "find")
		require.Len(mt, finds, 2)
		slug, ok := finds[0].Lookup("filter", "slug").StringValueOK()
		require.True(mt, ok)
		assert.Equal(mt, id.Hex(), slug)
		oid, ok := finds[1].Lookup("filter", "_id").ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, id, oid)
	})

	mt.Run("uppercase hex ids still reach the fallback", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollNavbarCategories
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				navbarDoc(id, "Cameras", "cameras")),
		)

		nav, err := NavbarCategoryByKey(context.Background(), mt.DB, strings.ToUpper(id.Hex()))
		require.NoError(mt, err)
		assert.Equal(mt, id, nav.ID)
	})
}

func TestFindByKeyNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("slug and id both missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollNavbarCategories
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		nav, err := NavbarCategoryByKey(context.Background(), mt.DB, primitive.NewObjectID().Hex())
		assert.Nil(mt, nav)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed key never queries", func(mt *mtest.T) {
		nav, err := NavbarCategoryByKey(context.Background(), mt.DB, "Dome Cameras")
		assert.Nil(mt, nav)
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.Empty(mt, startedCommands(mt, "find"))
	})
}

// startedCommands returns the command documents of every started event with
// the given command name.
func startedCommands(mt *mtest.T, name string) []bson.Raw {
	var cmds []bson.Raw
	for _, evt := range mt.GetAllStartedEvents() {
		if evt.CommandName == name {
			cmds = append(cmds, evt.Command)
		}
	}
	return cmds
}
