package importer

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"catalog-importer/feature/catalog/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// materializeFile returns the File record for the given content hash,
// fetching and optimizing the remote content only when the hash has never
// been seen. Lookup order: run cache, durable hash index, local filesystem
// (a file left behind by a partial prior run is reused, not re-fetched),
// then the network.
func (r *run) materializeFile(ctx context.Context, tx *gorm.DB, rawURL, hash string) (*models.File, error) {
	if rawURL == "" || hash == "" {
		return nil, recordErr(fmt.Errorf("image reference missing url or hash"))
	}

	if f, ok := r.files[hash]; ok {
		return f, nil
	}

	f, ok, err := firstByKeys[models.File](ctx, tx, []candidateKey{{"hash", hash}})
	if err != nil {
		return nil, err
	}
	if ok {
		r.files[hash] = f
		return f, nil
	}

	name := localName(rawURL)
	local := filepath.Join(r.im.cfg.MediaDir, name)

	if _, statErr := os.Stat(local); os.IsNotExist(statErr) {
		body, err := r.im.fetch.Fetch(ctx, rawURL)
		if err != nil {
			return nil, recordErr(err)
		}
		if len(body) == 0 {
			return nil, recordErr(fmt.Errorf("fetch %s: empty body", rawURL))
		}
		if err := os.MkdirAll(r.im.cfg.MediaDir, 0o755); err != nil {
			return nil, fmt.Errorf("create media dir: %w", err)
		}
		if err := os.WriteFile(local, body, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", local, err)
		}
		if err := r.im.optimize.Optimize(ctx, local); err != nil {
			r.log.Warn("image optimization failed", zap.String("file", name), zap.Error(err))
		}
	}

	info, err := os.Stat(local)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", local, err)
	}

	mime := ""
	if mtype, err := mimetype.DetectFile(local); err == nil {
		mime = mtype.String()
	}

	file := &models.File{
		Name: name,
		Size: info.Size(),
		Hash: hash,
		Mime: mime,
		Path: strings.TrimRight(r.im.cfg.MediaPublicURL, "/") + "/" + name,
	}
	if err := tx.WithContext(ctx).Create(file).Error; err != nil {
		return nil, err
	}

	r.mirrorFile(ctx, local, name, mime)

	r.files[hash] = file
	return file, nil
}

// mirrorFile uploads the optimized local file to object storage. An object
// already present under the key is not re-uploaded. Mirroring is
// best-effort: the import does not depend on the bucket.
func (r *run) mirrorFile(ctx context.Context, local, name, mime string) {
	if r.im.store == nil {
		return
	}
	object := path.Join(r.im.cfg.MediaObjectPrefix, name)
	if _, err := r.im.store.StatObject(ctx, r.im.bucket, object, minio.StatObjectOptions{}); err == nil {
		return
	}
	opts := minio.PutObjectOptions{ContentType: mime}
	if _, err := r.im.store.FPutObject(ctx, r.im.bucket, object, local, opts); err != nil {
		r.log.Warn("media mirror failed", zap.String("object", object), zap.Error(err))
	}
}

// localName derives the staging file name from the URL path basename.
func localName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}
