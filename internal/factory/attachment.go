package factory

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

const (
	taskAttachmentRate    = 0.25
	subtaskAttachmentRate = 0.10
	commentAttachmentRate = 0.05
)

// Attachments spreads file references across tasks, subtasks, and
// comments. Uploads land within four hours of the host. The per-comment
// counts are returned so the comment rows can be finalized with them.
func Attachments(rng *rand.Rand, src *ids.Source, tasks []models.Task, subtasks []models.Subtask, comments []models.Comment, windowEnd time.Time) ([]models.Attachment, map[string]int) {
	attachments := make([]models.Attachment, 0, len(tasks)/2)
	perComment := make(map[string]int)

	for _, task := range tasks {
		if !dist.Bernoulli(rng, taskAttachmentRate) {
			continue
		}
		for i := dist.UniformInt(rng, 1, 2); i > 0; i-- {
			a := newAttachment(rng, src, task.CreatedAt, task.CreatedBy, windowEnd)
			a.TaskID = ptr(task.TaskID)
			attachments = append(attachments, a)
		}
	}

	for _, subtask := range subtasks {
		if !dist.Bernoulli(rng, subtaskAttachmentRate) {
			continue
		}
		for i := dist.UniformInt(rng, 1, 2); i > 0; i-- {
			a := newAttachment(rng, src, subtask.CreatedAt, subtask.CreatedBy, windowEnd)
			a.SubtaskID = ptr(subtask.SubtaskID)
			attachments = append(attachments, a)
		}
	}

	for _, comment := range comments {
		if !dist.Bernoulli(rng, commentAttachmentRate) {
			continue
		}
		a := newAttachment(rng, src, comment.CreatedAt, comment.UserID, windowEnd)
		a.CommentID = ptr(comment.CommentID)
		attachments = append(attachments, a)
		perComment[comment.CommentID]++
	}

	return attachments, perComment
}

func newAttachment(rng *rand.Rand, src *ids.Source, hostCreated time.Time, uploadedBy string, windowEnd time.Time) models.Attachment {
	id := src.New(ids.PrefixAttachment)
	filename := dist.Pick(rng, catalog.AttachmentStems) + "." + dist.Pick(rng, catalog.AttachmentExtensions)

	created := hostCreated.Add(dist.UniformDuration(rng, time.Minute, 240*time.Minute))
	if limit := windowEnd.AddDate(0, 0, 30); created.After(limit) && limit.After(hostCreated) {
		created = limit
	}

	return models.Attachment{
		AttachmentID: id,
		Filename:     filename,
		CreatedAt:    created,
		UploadedBy:   uploadedBy,
		FileURL:      ptr("https://files.taskseed.dev/" + id + "/" + filename),
		FileSize:     ptr(fileSize(rng)),
	}
}

// fileSize draws between 10KB and 25MB, log-uniform so small files
// dominate.
func fileSize(rng *rand.Rand) int64 {
	const lo, hi = float64(10 << 10), float64(25 << 20)
	return int64(math.Round(math.Exp(math.Log(lo) + rng.Float64()*(math.Log(hi)-math.Log(lo)))))
}
