package store

import (
	"errors"
	"time"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostStore persists posts and their comments.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// PostFields are the mutable fields a create or edit form carries.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// List returns every post in insertion order, authors preloaded.
func (s *PostStore) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("User").Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	s.fillCommentCounts(posts)
	return posts, nil
}

// fillCommentCounts batch-fills CommentCount for a page of posts.
func (s *PostStore) fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func (s *PostStore) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post owned by authorID. The display date is stamped
// here, once, and never recalculated. A title collision surfaces as
// ErrDuplicateTitle.
func (s *PostStore) Create(fields PostFields, authorID uint) (*models.Post, error) {
	post := models.Post{
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Date:     time.Now().Format("January 2, 2006"),
		Body:     fields.Body,
		ImgURL:   fields.ImgURL,
		UserID:   authorID,
	}

	if err := s.db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return &post, nil
}

// Update overwrites the mutable fields and reassigns the post to whoever is
// editing it. The reassignment is intentional: the last editor owns the
// post. The original date is left alone.
func (s *PostStore) Update(id uint, fields PostFields, editorID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		post.Title = fields.Title
		post.Subtitle = fields.Subtitle
		post.Body = fields.Body
		post.ImgURL = fields.ImgURL
		post.UserID = editorID
		return tx.Save(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post and its comments in one transaction. The cascade is
// explicit here rather than delegated to DB referential actions, so Postgres
// and the SQLite test driver behave identically.
func (s *PostStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// CreateComment attaches a comment by authorID to postID. The post existence
// check and the insert share a transaction, so the comment can never land on
// a post deleted in between.
func (s *PostStore) CreateComment(text string, authorID, postID uint) (*models.Comment, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}

	comment := models.Comment{
		Text:   text,
		UserID: authorID,
		PostID: postID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsForPost returns only the comments belonging to postID, oldest
// first, authors preloaded.
func (s *PostStore) CommentsForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
