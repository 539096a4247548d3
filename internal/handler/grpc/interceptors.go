package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
)

var (
	requestIDKey = strings.ToLower(utils.RequestIDHeader)
	authKey      = strings.ToLower(rpc.AuthorizationHeader)
)

// Interceptors returns the unary interceptor chain of the node server.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	chain := []grpc.UnaryServerInterceptor{h.withRequestID, h.withLogging}
	if h.authCfg.TokenSignKey != "" {
		chain = append(chain, h.auth)
	}
	return chain
}

func (h *Handler) withRequestID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	requestID := firstValue(ctx, requestIDKey)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}

func (h *Handler) auth(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)

	header := firstValue(ctx, authKey)
	if header == "" {
		log.Warn().Msg("missing authorization metadata")
		return nil, status.Error(codes.Unauthenticated, "empty authorization metadata")
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Err(err).Send()
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.authCfg.TokenSignKey, h.authCfg.TokenIssuer)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token is expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return next(context.WithValue(ctx, utils.ClientIDCtxKey, token.ClientID), req)
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
