package arquivo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage assina URLs de upload direto para o bucket de arquivos
type Storage struct {
	presigner *s3.PresignClient
	bucket    string
}

// ValidadeUpload é o prazo da URL assinada
const ValidadeUpload = 15 * time.Minute

func NewStorage(ctx context.Context) (*Storage, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET não definida")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Storage{
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:    bucket,
	}, nil
}

// ChaveDeUpload monta a chave do objeto: {org}/{uuid}_{nome}
func ChaveDeUpload(orgID uint, nome string) string {
	return fmt.Sprintf("%d/%s_%s", orgID, uuid.NewString(), nome)
}

// URLDeUpload devolve uma URL assinada de PUT para a chave informada
func (s *Storage) URLDeUpload(ctx context.Context, chave, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(chave),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(ValidadeUpload))
	if err != nil {
		return "", fmt.Errorf("assinar URL de upload: %w", err)
	}
	return req.URL, nil
}
