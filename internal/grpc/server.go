package grpc

import (
	"context"
	"errors"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/service"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "secondhand/market-service/api/conversation/v1"
)

// ConversationServer exposes the conversation aggregate to internal callers.
type ConversationServer struct {
	pb.UnimplementedConversationServiceServer
	service service.ConversationService
	logger  *logrus.Logger
}

func NewConversationServer(svc service.ConversationService, logger *logrus.Logger) *ConversationServer {
	return &ConversationServer{
		service: svc,
		logger:  logger,
	}
}

// Register attaches the conversation service to r.
func (s *ConversationServer) Register(r grpc.ServiceRegistrar) {
	pb.RegisterConversationServiceServer(r, s)
}

func (s *ConversationServer) GetOrCreate(ctx context.Context, req *pb.GetOrCreateRequest) (*pb.GetOrCreateResponse, error) {
	s.logger.WithFields(logrus.Fields{
		"user_id": req.UserId,
		"peer_id": req.PeerId,
	}).Info("Resolving conversation via gRPC")

	id, err := s.service.GetOrCreate(ctx, req.UserId, req.PeerId)
	if err != nil {
		return nil, s.toStatus(err, "failed to get or create conversation")
	}

	return &pb.GetOrCreateResponse{ConversationId: id}, nil
}

func (s *ConversationServer) AppendChat(ctx context.Context, req *pb.AppendChatRequest) (*pb.AppendChatResponse, error) {
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"sender_id":       req.SenderId,
	}).Info("Appending chat via gRPC")

	// unset means server time
	var ts time.Time
	if req.Timestamp != nil {
		if err := req.Timestamp.CheckValid(); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		ts = req.Timestamp.AsTime()
	}

	chat, err := s.service.AppendChat(ctx, req.ConversationId, req.SenderId, req.Content, ts)
	if err != nil {
		return nil, s.toStatus(err, "failed to append chat")
	}

	return &pb.AppendChatResponse{Chat: chatToProto(chat)}, nil
}

func (s *ConversationServer) MarkSeen(ctx context.Context, req *pb.MarkSeenRequest) (*pb.MarkSeenResponse, error) {
	if err := s.service.MarkSeen(ctx, req.ConversationId, req.ViewerId, req.PeerId); err != nil {
		return nil, s.toStatus(err, "failed to mark chats as seen")
	}
	return &pb.MarkSeenResponse{}, nil
}

func (s *ConversationServer) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	view, err := s.service.Project(ctx, req.ConversationId, req.ViewerId)
	if err != nil {
		return nil, s.toStatus(err, "failed to get conversation")
	}

	resp := &pb.GetConversationResponse{
		Id:          view.ID,
		Chats:       make([]*pb.ChatView, 0, len(view.Chats)),
		PeerProfile: profileToProto(view.PeerProfile),
	}
	for _, c := range view.Chats {
		resp.Chats = append(resp.Chats, &pb.ChatView{
			Id:     c.ID,
			Text:   c.Text,
			Time:   timestamppb.New(c.Time),
			Viewed: c.Viewed,
			User:   profileToProto(c.User),
		})
	}
	return resp, nil
}

func (s *ConversationServer) ListSummaries(ctx context.Context, req *pb.ListSummariesRequest) (*pb.ListSummariesResponse, error) {
	summaries, err := s.service.Summarize(ctx, req.ViewerId)
	if err != nil {
		return nil, s.toStatus(err, "failed to list conversations")
	}

	resp := &pb.ListSummariesResponse{Summaries: make([]*pb.Summary, 0, len(summaries))}
	for _, sum := range summaries {
		resp.Summaries = append(resp.Summaries, &pb.Summary{
			Id:          sum.ID,
			LastMessage: sum.LastMessage,
			Timestamp:   timestamppb.New(sum.Timestamp),
			UnreadCount: int32(sum.UnreadCount),
			PeerProfile: profileToProto(sum.PeerProfile),
		})
	}
	return resp, nil
}

func (s *ConversationServer) toStatus(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidID), errors.Is(err, service.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrConversationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrNotParticipant):
		return status.Error(codes.PermissionDenied, err.Error())
	}

	s.logger.WithError(err).Error(msg)
	return status.Error(codes.Internal, msg)
}

func chatToProto(c *models.Chat) *pb.Chat {
	return &pb.Chat{
		Id:        c.ID.Hex(),
		SentBy:    c.SentBy,
		Content:   c.Content,
		Timestamp: timestamppb.New(c.Timestamp),
		Viewed:    c.Viewed,
	}
}

func profileToProto(p models.Profile) *pb.Profile {
	return &pb.Profile{
		Id:     p.ID,
		Name:   p.Name,
		Avatar: p.Avatar,
	}
}

// UnaryLogger logs every unary call with its duration and status code.
func UnaryLogger(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		}).Debug("gRPC call")
		return resp, err
	}
}
