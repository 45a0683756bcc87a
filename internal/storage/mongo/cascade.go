package mongo

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Каскадные удаления.
//
// Вместо рекурсии «один документ — один запрос» дерево зависимостей
// обходится уровнями: worklist стартует с корней, каждый следующий
// уровень — дети предыдущего ($in по parent-полю), удаление идёт
// пакетно и от самого глубокого уровня к корню. Дети удаляются раньше
// родителей, поэтому упавшая посередине операция безопасно повторяется:
// уже удалённые документы в следующий обход не попадают, а оставшиеся
// не содержат ссылок на удалённых предков.

// deleteBatchSize — потолок размера $in-пакета на один запрос удаления.
const deleteBatchSize = 500

var cascadeDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "videohosting_cascade_deleted_total",
	Help: "Documents removed by cascade deletion, by collection.",
}, []string{"collection"})

// collectSubtree собирает уровни поддеревьев: levels[0] — корни,
// levels[i+1] — документы, чьё parentField указывает на levels[i].
func collectSubtree(ctx context.Context, coll *mongodriver.Collection, parentField string, roots []primitive.ObjectID) ([][]primitive.ObjectID, error) {
	levels := [][]primitive.ObjectID{roots}

	current := roots
	for len(current) > 0 {
		cur, err := coll.Find(ctx,
			bson.D{{Key: parentField, Value: bson.D{{Key: "$in", Value: current}}}},
			options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
		)
		if err != nil {
			return nil, fmt.Errorf("find children: %w", err)
		}

		var children []struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.All(ctx, &children); err != nil {
			return nil, fmt.Errorf("decode children: %w", err)
		}

		if len(children) == 0 {
			break
		}

		next := make([]primitive.ObjectID, 0, len(children))
		for _, c := range children {
			next = append(next, c.ID)
		}

		levels = append(levels, next)
		current = next
	}

	return levels, nil
}

// deleteByIn удаляет документы пакетами по $in-фильтру поля field.
func deleteByIn(ctx context.Context, coll *mongodriver.Collection, field string, ids []primitive.ObjectID) error {
	for start := 0; start < len(ids); start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		res, err := coll.DeleteMany(ctx,
			bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: ids[start:end]}}}},
		)
		if err != nil {
			return fmt.Errorf("delete batch: %w", err)
		}

		cascadeDeleted.WithLabelValues(coll.Name()).Add(float64(res.DeletedCount))
	}

	return nil
}

// flatten склеивает уровни в один список идентификаторов.
func flatten(levels [][]primitive.ObjectID) []primitive.ObjectID {
	total := 0
	for _, l := range levels {
		total += len(l)
	}

	all := make([]primitive.ObjectID, 0, total)
	for _, l := range levels {
		all = append(all, l...)
	}

	return all
}

// deleteCommentTrees удаляет поддеревья комментариев с заданными корнями:
// сперва лайки всех комментариев поддеревьев, затем сами комментарии —
// от глубокого уровня к корням.
func (m *Mongo) deleteCommentTrees(ctx context.Context, roots []primitive.ObjectID) error {
	if len(roots) == 0 {
		return nil
	}

	levels, err := collectSubtree(ctx, m.comments, "parent_comment", roots)
	if err != nil {
		return fmt.Errorf("collect comments: %w", err)
	}

	if err := deleteByIn(ctx, m.likes, "comment", flatten(levels)); err != nil {
		return fmt.Errorf("comment likes: %w", err)
	}

	for i := len(levels) - 1; i >= 0; i-- {
		if err := deleteByIn(ctx, m.comments, "_id", levels[i]); err != nil {
			return fmt.Errorf("comments level %d: %w", i, err)
		}
	}

	return nil
}

// DeleteComment каскадно удаляет комментарий: все вложенные ответы,
// лайки каждого удалённого комментария, затем сами записи снизу вверх.
// Отсутствующий или некорректный корень — no-op.
func (m *Mongo) DeleteComment(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteComment"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if err := m.deleteCommentTrees(ctx, []primitive.ObjectID{oid}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteTweet каскадно удаляет твит: всё поддерево ответов, лайки каждого
// удалённого твита, затем сами записи снизу вверх.
// Отсутствующий или некорректный корень — no-op.
func (m *Mongo) DeleteTweet(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteTweet"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	levels, err := collectSubtree(ctx, m.tweets, "parent_tweet", []primitive.ObjectID{oid})
	if err != nil {
		return fmt.Errorf("%s: collect tweets: %w", op, err)
	}

	if err := deleteByIn(ctx, m.likes, "tweet", flatten(levels)); err != nil {
		return fmt.Errorf("%s: tweet likes: %w", op, err)
	}

	for i := len(levels) - 1; i >= 0; i-- {
		if err := deleteByIn(ctx, m.tweets, "_id", levels[i]); err != nil {
			return fmt.Errorf("%s: tweets level %d: %w", op, i, err)
		}
	}

	return nil
}

// DeleteVideo каскадно удаляет видео: поддеревья всех его комментариев
// с их лайками, лайки самого видео, запись видео и ссылки из плейлистов
// ($pull). Блобы медиа удаляет вызывающий слой.
// Отсутствующий или некорректный корень — no-op.
func (m *Mongo) DeleteVideo(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteVideo"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	// Корни комментариев — все прямые комментарии к видео.
	cur, err := m.comments.Find(ctx,
		bson.D{{Key: "video", Value: oid}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return fmt.Errorf("%s: find comments: %w", op, err)
	}

	var direct []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &direct); err != nil {
		return fmt.Errorf("%s: decode comments: %w", op, err)
	}

	roots := make([]primitive.ObjectID, 0, len(direct))
	for _, c := range direct {
		roots = append(roots, c.ID)
	}

	if err := m.deleteCommentTrees(ctx, roots); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := deleteByIn(ctx, m.likes, "video", []primitive.ObjectID{oid}); err != nil {
		return fmt.Errorf("%s: video likes: %w", op, err)
	}

	if err := deleteByIn(ctx, m.videos, "_id", []primitive.ObjectID{oid}); err != nil {
		return fmt.Errorf("%s: video: %w", op, err)
	}

	// Ссылки из плейлистов убираются последними: до этого момента повтор
	// операции всё ещё находит видео-связанные документы по $in.
	if _, err := m.playlists.UpdateMany(ctx,
		bson.D{{Key: "videos", Value: oid}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "videos", Value: oid}}}},
	); err != nil {
		return fmt.Errorf("%s: playlists pull: %w", op, err)
	}

	return nil
}
