package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Album struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	SchoolYearID bson.ObjectID `json:"schoolYearId" bson:"school_year_id"`
	Title        string        `json:"title" bson:"title"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	CoverURL     string        `json:"coverUrl,omitempty" bson:"cover_url,omitempty"`
	CreatedBy    bson.ObjectID `json:"createdBy" bson:"created_by"`
	LikeCount    int           `json:"likeCount" bson:"like_count"`
	ViewCount    int           `json:"viewCount" bson:"view_count"`
	MediaCount   int           `json:"mediaCount" bson:"media_count"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at"`
}

type Media struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	AlbumID     bson.ObjectID `json:"albumId" bson:"album_id"`
	URL         string        `json:"url" bson:"url"`
	Caption     string        `json:"caption,omitempty" bson:"caption,omitempty"`
	ContentType string        `json:"contentType,omitempty" bson:"content_type,omitempty"`
	UploadedBy  bson.ObjectID `json:"uploadedBy" bson:"uploaded_by"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
}

type AlbumLike struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"user_id"`
	AlbumID   bson.ObjectID `json:"albumId" bson:"album_id"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

type AlbumView struct {
	ID       bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	AlbumID  bson.ObjectID  `json:"albumId" bson:"album_id"`
	UserID   *bson.ObjectID `json:"userId,omitempty" bson:"user_id,omitempty"`
	ViewedAt time.Time      `json:"viewedAt" bson:"viewed_at"`
}
