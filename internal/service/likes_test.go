package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleLike_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	target := models.LikeTarget{Kind: models.TargetVideo, ID: primitive.NewObjectID().Hex()}

	_, err := s.ToggleLike(context.Background(), "  ", target)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.ToggleLike(context.Background(), "actor", models.LikeTarget{Kind: "story", ID: target.ID})
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = s.ToggleLike(context.Background(), "actor", models.LikeTarget{Kind: models.TargetVideo})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestToggleLike_TargetMustExist(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	target := models.LikeTarget{Kind: models.TargetTweet, ID: primitive.NewObjectID().Hex()}
	ms.EXPECT().TweetByID(gomock.Any(), target.ID).Return(nil, storage.ErrNotFound)

	_, err := s.ToggleLike(context.Background(), "actor", target)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLike_ProbesTargetByKind(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	video := mustVideo(owner, "likeable")
	target := models.LikeTarget{Kind: models.TargetVideo, ID: video.ID.Hex()}

	ms.EXPECT().VideoByID(gomock.Any(), video.ID.Hex()).Return(video, nil)
	ms.EXPECT().ToggleLike(gomock.Any(), "actor", target).Return(true, nil)

	liked, err := s.ToggleLike(context.Background(), "actor", target)
	require.NoError(t, err)
	require.True(t, liked)
}

func TestToggleLike_SecondCallRemoves(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	commentID := primitive.NewObjectID()
	target := models.LikeTarget{Kind: models.TargetComment, ID: commentID.Hex()}

	ms.EXPECT().CommentByID(gomock.Any(), target.ID).Return(&models.Comment{ID: commentID}, nil)
	ms.EXPECT().ToggleLike(gomock.Any(), "actor", target).Return(false, nil)

	liked, err := s.ToggleLike(context.Background(), "actor", target)
	require.NoError(t, err)
	require.False(t, liked)
}

func TestLikedLists_ErrorMapping(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	p := models.ListParams{Page: 1, Limit: 10}

	_, err := s.LikedVideos(context.Background(), "", p)
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().LikedVideos(gomock.Any(), "user", p).Return(nil, storage.ErrNotFound)
	_, err = s.LikedVideos(context.Background(), "user", p)
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().LikedComments(gomock.Any(), "user", p).Return(nil, errors.New("boom"))
	_, err = s.LikedComments(context.Background(), "user", p)
	require.ErrorIs(t, err, ErrInternal)

	ms.EXPECT().LikedTweets(gomock.Any(), "user", p).Return([]models.LikedTweet{}, nil)
	out, err := s.LikedTweets(context.Background(), "user", p)
	require.NoError(t, err)
	require.Empty(t, out)
}
