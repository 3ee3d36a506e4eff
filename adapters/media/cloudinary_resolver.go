package media

import (
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/config"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

// localImagePrefix marks site-relative images that are mirrored on Cloudinary.
const localImagePrefix = "/images/"

type cloudinaryResolver struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger logger.Logger
}

// NewCloudinaryResolver maps "/images/<p>.<ext>" to the delivery URL of public id
// "<folder>/<p>". Returns the passthrough resolver when Cloudinary is not configured.
func NewCloudinaryResolver(cfg config.Config, log logger.Logger) (service.ImageResolver, error) {
	if cfg.Cloudinary.CloudName == "" {
		log.Info("Cloudinary not configured, serving local image paths")
		return service.PassthroughImages, nil
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	log.Info("Cloudinary image resolver ready", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryResolver{cld: cld, folder: strings.Trim(cfg.Cloudinary.Folder, "/"), logger: log}, nil
}

func (r *cloudinaryResolver) Resolve(p string) string {
	publicID, ok := PublicID(r.folder, p)
	if !ok {
		return p
	}
	img, err := r.cld.Image(publicID)
	if err != nil {
		r.logger.Warn("Cannot build Cloudinary asset", zap.String("public_id", publicID), zap.Error(err))
		return p
	}
	img.Transformation = "f_auto,q_auto"
	u, err := img.String()
	if err != nil {
		r.logger.Warn("Cannot render Cloudinary URL", zap.String("public_id", publicID), zap.Error(err))
		return p
	}
	return u
}

// PublicID derives the Cloudinary public id for a site-relative image path.
func PublicID(folder, p string) (string, bool) {
	if !strings.HasPrefix(p, localImagePrefix) {
		return "", false
	}
	rel := strings.TrimPrefix(p, localImagePrefix)
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	if rel == "" {
		return "", false
	}
	if folder == "" {
		return rel, true
	}
	return folder + "/" + rel, true
}
