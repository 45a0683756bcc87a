package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddComment_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID().Hex()
	video := primitive.NewObjectID().Hex()

	_, err := s.AddComment(context.Background(), AddCommentInput{
		Content: "text",
		Target:  models.CommentTarget{Kind: models.TargetVideo, ID: video},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.AddComment(context.Background(), AddCommentInput{
		OwnerID: owner,
		Content: "   ",
		Target:  models.CommentTarget{Kind: models.TargetVideo, ID: video},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.AddComment(context.Background(), AddCommentInput{
		OwnerID: owner,
		Content: "text",
		Target:  models.CommentTarget{Kind: "playlist", ID: video},
	})
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = s.AddComment(context.Background(), AddCommentInput{
		OwnerID: owner,
		Content: "text",
		Target:  models.CommentTarget{Kind: models.TargetVideo},
	})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestAddComment_SetsExactlyOneAssociation(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ownerOID := primitive.NewObjectID()
	videoOID := primitive.NewObjectID()
	parentOID := primitive.NewObjectID()

	ms.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) {
			require.Equal(t, videoOID, c.VideoID)
			require.True(t, c.ParentID.IsZero())
			c.ID = primitive.NewObjectID()
			return &c, nil
		})

	_, err := s.AddComment(context.Background(), AddCommentInput{
		OwnerID: ownerOID.Hex(),
		Content: "про видео",
		Target:  models.CommentTarget{Kind: models.TargetVideo, ID: videoOID.Hex()},
	})
	require.NoError(t, err)

	ms.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) {
			require.Equal(t, parentOID, c.ParentID)
			require.True(t, c.VideoID.IsZero())
			c.ID = primitive.NewObjectID()
			return &c, nil
		})

	_, err = s.AddComment(context.Background(), AddCommentInput{
		OwnerID: ownerOID.Hex(),
		Content: "ответ",
		Target:  models.CommentTarget{Kind: models.TargetComment, ID: parentOID.Hex()},
	})
	require.NoError(t, err)
}

func TestAddComment_StorageErrorMapping(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	in := AddCommentInput{
		OwnerID: primitive.NewObjectID().Hex(),
		Content: "text",
		Target:  models.CommentTarget{Kind: models.TargetVideo, ID: primitive.NewObjectID().Hex()},
	}

	ms.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err := s.AddComment(context.Background(), in)
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidAssociation)
	_, err = s.AddComment(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestUpdateComment_OwnershipEnforced(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	comment := &models.Comment{
		ID:      primitive.NewObjectID(),
		Content: "было",
		OwnerID: owner,
	}

	ms.EXPECT().CommentByID(gomock.Any(), comment.ID.Hex()).Return(comment, nil)
	_, err := s.UpdateComment(context.Background(), comment.ID.Hex(), primitive.NewObjectID().Hex(), "стало")
	require.ErrorIs(t, err, ErrPermissionDenied)

	updated := *comment
	updated.Content = "стало"
	ms.EXPECT().CommentByID(gomock.Any(), comment.ID.Hex()).Return(comment, nil)
	ms.EXPECT().UpdateCommentContent(gomock.Any(), comment.ID.Hex(), "стало").Return(&updated, nil)

	got, err := s.UpdateComment(context.Background(), comment.ID.Hex(), owner.Hex(), "стало")
	require.NoError(t, err)
	require.Equal(t, "стало", got.Content)
}

func TestDeleteComment_OwnerTriggersCascade(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	owner := primitive.NewObjectID()
	comment := &models.Comment{ID: primitive.NewObjectID(), Content: "root", OwnerID: owner}

	ms.EXPECT().CommentByID(gomock.Any(), comment.ID.Hex()).Return(comment, nil)
	ms.EXPECT().DeleteComment(gomock.Any(), comment.ID.Hex()).Return(nil)

	require.NoError(t, s.DeleteComment(context.Background(), comment.ID.Hex(), owner.Hex()))
}

func TestCommentsFor_EmptyTarget(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	_, err := s.CommentsFor(context.Background(), "  ", models.ListParams{Page: 1, Limit: 10})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
