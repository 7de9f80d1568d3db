package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/logging"
	"speech-summarizer/internal/config"
)

var encodings = map[string]speechpb.RecognitionConfig_AudioEncoding{
	"wav": speechpb.RecognitionConfig_LINEAR16,
	"mp3": speechpb.RecognitionConfig_MP3,
	"ogg": speechpb.RecognitionConfig_OGG_OPUS,
}

// Encoding maps a configured audio format to the recognition encoding.
func Encoding(format string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	enc, ok := encodings[strings.ToLower(format)]
	if !ok {
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("invalid audio format specified: %q", format)
	}
	return enc, nil
}

// recognizer runs one long-running recognition to completion.
type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (*speechpb.LongRunningRecognizeResponse, error)
}

type cloudRecognizer struct {
	client *speechapi.Client
}

func (r cloudRecognizer) Recognize(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (*speechpb.LongRunningRecognizeResponse, error) {
	op, err := r.client.LongRunningRecognize(ctx, req)
	if err != nil {
		return nil, err
	}
	return op.Wait(ctx)
}

// GoogleSpeechToText transcribes files in a Google Cloud Storage bucket.
type GoogleSpeechToText struct {
	recognizer recognizer
	closer     func() error
	config     *speechpb.RecognitionConfig
	bucket     string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewGoogleSpeechToText connects to the Speech-to-Text API with the
// service-account credentials in cfg. A connection failure is returned as
// an STT connection error; an unknown audio format as a plain error.
func NewGoogleSpeechToText(ctx context.Context, cfg config.SpeechConfig, logger *zap.Logger) (*GoogleSpeechToText, error) {
	logger = logging.Component(logger, "speech")

	recConfig, err := recognitionConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := speechapi.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		logger.Error("Error while making Google client", zap.Error(err))
		return nil, apperrors.STTConnection(err)
	}
	logger.Info("Connected to Google Speech_to_Text API")

	g := newGoogleSpeechToText(cloudRecognizer{client: client}, recConfig, cfg, logger)
	g.closer = client.Close
	return g, nil
}

func newGoogleSpeechToText(rec recognizer, recConfig *speechpb.RecognitionConfig, cfg config.SpeechConfig, logger *zap.Logger) *GoogleSpeechToText {
	return &GoogleSpeechToText{
		recognizer: rec,
		closer:     func() error { return nil },
		config:     recConfig,
		bucket:     cfg.Bucket,
		timeout:    cfg.Timeout(),
		logger:     logger,
	}
}

func recognitionConfig(cfg config.SpeechConfig) (*speechpb.RecognitionConfig, error) {
	enc, err := Encoding(cfg.AudioFormat)
	if err != nil {
		return nil, err
	}
	return &speechpb.RecognitionConfig{
		Encoding:          enc,
		SampleRateHertz:   int32(cfg.SampleRateHertz),
		AudioChannelCount: int32(cfg.ChannelCount),
		LanguageCode:      cfg.LanguageCode,
		Model:             cfg.Model,
	}, nil
}

// URI returns the storage location of fileName.
func (g *GoogleSpeechToText) URI(fileName string) string {
	return fmt.Sprintf("gs://%s/%s", g.bucket, fileName)
}

// Convert transcribes fileName. The best alternative of every recognized
// segment is concatenated in the order returned by the service. Any
// failure, including the timeout, is an STT operation error.
func (g *GoogleSpeechToText) Convert(ctx context.Context, fileName string) (string, error) {
	if fileName == "" {
		return "", apperrors.STTOperation(fmt.Errorf("file name is required"))
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	uri := g.URI(fileName)
	resp, err := g.recognizer.Recognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: g.config,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: uri},
		},
	})
	if err != nil {
		g.logger.Error("Error in conversion", zap.String("uri", uri), zap.Error(err))
		return "", apperrors.STTOperation(err)
	}

	best := lo.FilterMap(resp.GetResults(), func(r *speechpb.SpeechRecognitionResult, _ int) (*speechpb.SpeechRecognitionAlternative, bool) {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			return nil, false
		}
		return alts[0], true
	})
	if len(best) == 0 {
		err := fmt.Errorf("no speech recognized in %s", uri)
		g.logger.Error("Error in conversion", zap.String("uri", uri), zap.Error(err))
		return "", apperrors.STTOperation(err)
	}

	confidences := lo.Map(best, func(a *speechpb.SpeechRecognitionAlternative, _ int) float64 {
		return float64(a.GetConfidence())
	})
	g.logger.Info("Transcription finished",
		zap.String("file", fileName),
		zap.Int("segments", len(best)),
		zap.Float64("transcriber_confidence", lo.Sum(confidences)/float64(len(confidences))),
	)

	transcripts := lo.Map(best, func(a *speechpb.SpeechRecognitionAlternative, _ int) string {
		return a.GetTranscript()
	})
	return strings.Join(transcripts, ""), nil
}

// Close releases the underlying API connection.
func (g *GoogleSpeechToText) Close() error {
	return g.closer()
}
