package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(store *memStore) *PostService {
	return NewPostService(fakePostRepo{store}, fakeCommentRepo{store}, fakeLikeRepo{store})
}

func TestPostCreateAndGet(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	owner := store.addUser("Olga", "olga@miniwall.com")
	post, err := svc.Create(ctx, owner.ID, CreatePostInput{Title: "Immigrant Song", Body: "I come from the land of the ice and snow."})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, post.OwnerID)

	view, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Immigrant Song", view.Title)
	require.NotNil(t, view.Owner)
	assert.Equal(t, "Olga", view.Owner.ScreenName)
	require.NotNil(t, view.NLikes)
	assert.Equal(t, 0, *view.NLikes)
}

func TestPostGetHydratesCommentsAndLikes(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	owner := store.addUser("Olga", "olga@miniwall.com")
	nick := store.addUser("Nick", "nick@miniwall.com")
	mary := store.addUser("Mary", "mary@miniwall.com")
	post := store.addPost(owner, "Rebel Girl", time.Now())

	comments := NewCommentService(fakeCommentRepo{store}, fakePostRepo{store})
	likes := NewLikeService(fakeLikeRepo{store}, fakePostRepo{store})

	first, err := comments.Create(ctx, nick.ID, post.ID, WriteCommentInput{Body: "first comment"})
	require.NoError(t, err)
	_, err = comments.Create(ctx, mary.ID, post.ID, WriteCommentInput{Body: "second comment"})
	require.NoError(t, err)
	_, err = likes.Create(ctx, nick.ID, post.ID)
	require.NoError(t, err)

	view, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)

	require.NotNil(t, view.NLikes)
	assert.Equal(t, 1, *view.NLikes)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, first.ID, view.Comments[0].ID)
	require.NotNil(t, view.Comments[0].Author)
	assert.Equal(t, "Nick", view.Comments[0].Author.ScreenName)
	assert.Nil(t, view.Comments[0].Post)
	require.Len(t, view.Likes, 1)
	require.NotNil(t, view.Likes[0].Backer)
	assert.Equal(t, "Nick", view.Likes[0].Backer.ScreenName)
}

func TestPostGetNotFound(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostUpdateOwnership(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	owner := store.addUser("Olga", "olga@miniwall.com")
	other := store.addUser("Nick", "nick@miniwall.com")
	post := store.addPost(owner, "Teenage Riot", time.Now())

	title := "Teenage Riot (live)"
	_, err := svc.Update(ctx, other.ID, post.ID, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotPostOwner)

	updated, err := svc.Update(ctx, owner.ID, post.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, post.Body, updated.Body)
}

func TestPostDeleteCascades(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	owner := store.addUser("Olga", "olga@miniwall.com")
	nick := store.addUser("Nick", "nick@miniwall.com")
	mary := store.addUser("Mary", "mary@miniwall.com")
	post := store.addPost(owner, "Destination Venus", time.Now())
	kept := store.addPost(nick, "California Soul", time.Now())

	comments := NewCommentService(fakeCommentRepo{store}, fakePostRepo{store})
	likes := NewLikeService(fakeLikeRepo{store}, fakePostRepo{store})
	for _, u := range []uuid.UUID{nick.ID, mary.ID} {
		_, err := comments.Create(ctx, u, post.ID, WriteCommentInput{Body: "a fine comment"})
		require.NoError(t, err)
		_, err = likes.Create(ctx, u, post.ID)
		require.NoError(t, err)
	}
	_, err := comments.Create(ctx, mary.ID, kept.ID, WriteCommentInput{Body: "unrelated comment"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, nick.ID, post.ID)
	assert.ErrorIs(t, err, ErrNotPostOwner)

	deleted, err := svc.Delete(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// No comment or like may still reference the deleted post.
	for _, c := range store.comments {
		assert.NotEqual(t, post.ID, c.PostID)
	}
	for _, l := range store.likes {
		assert.NotEqual(t, post.ID, l.PostID)
	}
	assert.Len(t, store.comments, 1)

	_, err = svc.Delete(ctx, owner.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostListRanking(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	olga := store.addUser("Olga", "olga@miniwall.com")
	nick := store.addUser("Nick", "nick@miniwall.com")
	mary := store.addUser("Mary", "mary@miniwall.com")

	base := time.Now()
	unpopular := store.addPost(olga, "early, no likes", base)
	popular := store.addPost(nick, "late, two likes", base.Add(2*time.Hour))
	middle := store.addPost(olga, "later, one like", base.Add(3*time.Hour))
	tied := store.addPost(mary, "earlier, one like", base.Add(time.Hour))

	likes := NewLikeService(fakeLikeRepo{store}, fakePostRepo{store})
	_, err := likes.Create(ctx, olga.ID, popular.ID)
	require.NoError(t, err)
	_, err = likes.Create(ctx, mary.ID, popular.ID)
	require.NoError(t, err)
	_, err = likes.Create(ctx, nick.ID, middle.ID)
	require.NoError(t, err)
	_, err = likes.Create(ctx, nick.ID, tied.ID)
	require.NoError(t, err)

	views, err := svc.List(ctx, olga.ID, ScopeAll)
	require.NoError(t, err)
	require.Len(t, views, 4)

	// Most liked first; equal counts keep creation order, earliest first.
	assert.Equal(t, popular.ID, views[0].ID)
	assert.Equal(t, tied.ID, views[1].ID)
	assert.Equal(t, middle.ID, views[2].ID)
	assert.Equal(t, unpopular.ID, views[3].ID)

	for i := 1; i < len(views); i++ {
		assert.GreaterOrEqual(t, *views[i-1].NLikes, *views[i].NLikes)
		if *views[i-1].NLikes == *views[i].NLikes {
			assert.False(t, views[i].CreatedAt.Before(views[i-1].CreatedAt))
		}
	}

	// The all scope shows each post's owner.
	for _, v := range views {
		assert.NotNil(t, v.Owner)
		assert.Nil(t, v.Comments)
		assert.Nil(t, v.Likes)
	}
}

func TestPostListUserScope(t *testing.T) {
	store := newMemStore()
	svc := newPostService(store)
	ctx := context.Background()

	olga := store.addUser("Olga", "olga@miniwall.com")
	nick := store.addUser("Nick", "nick@miniwall.com")
	store.addPost(olga, "mine", time.Now())
	store.addPost(olga, "also mine", time.Now().Add(time.Minute))
	store.addPost(nick, "not mine", time.Now())

	views, err := svc.List(ctx, olga.ID, ScopeUser)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Viewer-only listing drops the owner profile; every owner is the viewer.
	for _, v := range views {
		assert.Nil(t, v.Owner)
		require.NotNil(t, v.NLikes)
	}
}
