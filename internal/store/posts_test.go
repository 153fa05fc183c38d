package store

import (
	"errors"
	"testing"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

func seedUsers(t *testing.T, gdb *gorm.DB) (admin, member *models.User) {
	t.Helper()
	users := NewUserStore(gdb)

	admin, err := users.Create("alice", "a@x.com", "hash1")
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	member, err = users.Create("bob", "b@x.com", "hash2")
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return admin, member
}

func TestCreatePostStampsDateAndAuthor(t *testing.T) {
	gdb := testDB(t)
	admin, _ := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	post, err := posts.Create(PostFields{Title: "Hello", Subtitle: "First", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.UserID != admin.ID {
		t.Errorf("post author = %d, want %d", post.UserID, admin.ID)
	}
	if post.Date == "" {
		t.Error("post date was not stamped at creation")
	}
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	gdb := testDB(t)
	admin, _ := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	if _, err := posts.Create(PostFields{Title: "Hello", Body: "one"}, admin.ID); err != nil {
		t.Fatalf("create post: %v", err)
	}

	_, err := posts.Create(PostFields{Title: "Hello", Body: "two"}, admin.ID)
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("duplicate title err = %v, want ErrDuplicateTitle", err)
	}
	if n := countRows(t, gdb, &models.Post{}); n != 1 {
		t.Errorf("post rows = %d, want 1", n)
	}
}

func TestUpdateReassignsAuthorKeepsDate(t *testing.T) {
	gdb := testDB(t)
	admin, member := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	created, err := posts.Create(PostFields{Title: "Hello", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	updated, err := posts.Update(created.ID, PostFields{Title: "Hello again", Body: "new body"}, member.ID)
	if err != nil {
		t.Fatalf("update post: %v", err)
	}

	// The editor becomes the owner; the publication date never moves.
	if updated.UserID != member.ID {
		t.Errorf("author after edit = %d, want editor %d", updated.UserID, member.ID)
	}
	if updated.Date != created.Date {
		t.Errorf("date changed on edit: %q -> %q", created.Date, updated.Date)
	}
	if updated.Title != "Hello again" || updated.Body != "new body" {
		t.Errorf("fields not overwritten: %+v", updated)
	}
}

func TestUpdateMissingPost(t *testing.T) {
	gdb := testDB(t)
	admin, _ := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	if _, err := posts.Update(99, PostFields{Title: "x", Body: "y"}, admin.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing post err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesComments(t *testing.T) {
	gdb := testDB(t)
	admin, member := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	keep, err := posts.Create(PostFields{Title: "Keep", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	doomed, err := posts.Create(PostFields{Title: "Doomed", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := posts.CreateComment("stays", member.ID, keep.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if _, err := posts.CreateComment("goes", member.ID, doomed.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := posts.Delete(doomed.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if _, err := posts.Get(doomed.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted post Get err = %v, want ErrNotFound", err)
	}
	if n := countRows(t, gdb, &models.Comment{}); n != 1 {
		t.Errorf("comment rows after cascade = %d, want 1", n)
	}

	remaining, err := posts.CommentsForPost(keep.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Text != "stays" {
		t.Errorf("surviving comments = %+v, want the one on the kept post", remaining)
	}
}

func TestDeleteMissingPost(t *testing.T) {
	gdb := testDB(t)
	seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	if err := posts.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing post err = %v, want ErrNotFound", err)
	}
}

func TestCommentRequiresAuthorAndPost(t *testing.T) {
	gdb := testDB(t)
	admin, member := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	post, err := posts.Create(PostFields{Title: "Hello", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := posts.CreateComment("anon", 0, post.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous comment err = %v, want ErrUnauthenticated", err)
	}
	if _, err := posts.CreateComment("lost", member.ID, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("comment on missing post err = %v, want ErrNotFound", err)
	}
	if n := countRows(t, gdb, &models.Comment{}); n != 0 {
		t.Errorf("comment rows after failed attempts = %d, want 0", n)
	}

	comment, err := posts.CreateComment("hello there", member.ID, post.ID)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.UserID != member.ID {
		t.Errorf("comment author = %d, want %d", comment.UserID, member.ID)
	}
}

func TestCommentsScopedToPost(t *testing.T) {
	gdb := testDB(t)
	admin, member := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	first, err := posts.Create(PostFields{Title: "First", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	second, err := posts.Create(PostFields{Title: "Second", Body: "body"}, admin.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := posts.CreateComment("on first", member.ID, first.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if _, err := posts.CreateComment("on second", admin.ID, second.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	comments, err := posts.CommentsForPost(first.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	for _, c := range comments {
		if c.PostID != first.ID {
			t.Errorf("comment %d belongs to post %d, leaked into post %d's listing", c.ID, c.PostID, first.ID)
		}
	}
	if len(comments) != 1 || comments[0].Text != "on first" {
		t.Errorf("comments for first post = %+v, want exactly the one written there", comments)
	}
}

func TestListOrderAndCommentCounts(t *testing.T) {
	gdb := testDB(t)
	admin, member := seedUsers(t, gdb)
	posts := NewPostStore(gdb)

	a, _ := posts.Create(PostFields{Title: "A", Body: "body"}, admin.ID)
	b, _ := posts.Create(PostFields{Title: "B", Body: "body"}, admin.ID)
	posts.CreateComment("one", member.ID, b.ID)
	posts.CreateComment("two", admin.ID, b.ID)

	list, err := posts.List()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Fatalf("list order = %+v, want insertion order", list)
	}
	if list[0].CommentCount != 0 || list[1].CommentCount != 2 {
		t.Errorf("comment counts = %d,%d, want 0,2", list[0].CommentCount, list[1].CommentCount)
	}
	if list[0].User.Name != "alice" {
		t.Errorf("author not preloaded: %+v", list[0].User)
	}
}
