package common

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"profnet/pkg/errors"
)

var publicMethods = map[string]bool{
	"/profnet.v1.UserService/Register": true,
	"/profnet.v1.UserService/Login":    true,
}

// AuthInterceptor validates the bearer token on every non-public method and
// injects the caller's identity into the request context.
func AuthInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		vals := md["authorization"]
		if len(vals) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization required")
		}

		// vals[0] = "Bearer <token>"
		parts := strings.Fields(vals[0])
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return nil, status.Error(codes.Unauthenticated, "invalid auth header")
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		ctx = context.WithValue(ctx, "user_id", claims.UserID)
		ctx = context.WithValue(ctx, "handle", claims.Handle)

		return handler(ctx, req)
	}
}

// ErrorInterceptor maps domain error codes onto grpc status codes so the
// session layer sees distinct, inspectable outcomes.
func ErrorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			if _, ok := status.FromError(err); ok {
				return nil, err
			}
			return nil, status.Error(GRPCCode(err), err.Error())
		}
		return resp, nil
	}
}

func GRPCCode(err error) codes.Code {
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		return codes.InvalidArgument
	case errors.CodeNotFound:
		return codes.NotFound
	case errors.CodeUnauthorized, errors.CodeForbidden:
		return codes.PermissionDenied
	case errors.CodeConflict:
		return codes.Aborted
	default:
		return codes.Internal
	}
}
