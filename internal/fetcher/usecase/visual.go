package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"influencer-srv/internal/model"
	"influencer-srv/pkg/minio"
)

type visualTask struct {
	slot   int
	postID string
	url    string
}

// analyzeVisuals extracts dominant colors for each task's media through a
// bounded worker pool. Results land in the slot matching the task, so post
// order follows the source API regardless of completion order. Failures
// degrade to nil colors.
func (uc *implUseCase) analyzeVisuals(ctx context.Context, platform model.Platform, tasks []visualTask) [][]string {
	results := make([][]string, len(tasks))
	if len(tasks) == 0 {
		return results
	}

	jobs := make(chan visualTask)
	var wg sync.WaitGroup
	for i := 0; i < uc.cfg.VisualWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range jobs {
				results[task.slot] = uc.analyzeOne(ctx, platform, task)
			}
		}()
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)
	wg.Wait()

	return results
}

func (uc *implUseCase) analyzeOne(ctx context.Context, platform model.Platform, task visualTask) []string {
	if task.url == "" {
		return nil
	}

	body, statusCode, err := uc.httpClient.Get(ctx, task.url, nil)
	if err != nil || statusCode != http.StatusOK {
		uc.l.Debugf(ctx, "fetcher.usecase.analyzeOne: failed to download media %s: status %d, err %v", task.url, statusCode, err)
		return nil
	}

	uc.archiveMedia(ctx, platform, task.postID, body)

	dominant, err := uc.colors.Dominant(body, 5)
	if err != nil {
		uc.l.Debugf(ctx, "fetcher.usecase.analyzeOne: color extraction failed for post %s: %v", task.postID, err)
		return nil
	}
	return dominant
}

// archiveMedia stores the raw media bytes, best effort.
func (uc *implUseCase) archiveMedia(ctx context.Context, platform model.Platform, postID string, body []byte) {
	if uc.storage == nil || uc.cfg.ArchiveBucket == "" || postID == "" {
		return
	}

	objectName := fmt.Sprintf("%s/%s", platform, postID)
	_, err := uc.storage.Upload(ctx, minio.UploadRequest{
		BucketName:  uc.cfg.ArchiveBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: http.DetectContentType(body),
	})
	if err != nil {
		uc.l.Warnf(ctx, "fetcher.usecase.archiveMedia: failed to archive %s: %v", objectName, err)
	}
}
