package grpc

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "secondhand/market-service/api/conversation/v1"
)

var serverTime = time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

type fakeConversations struct {
	service.ConversationService
	err      error
	received []time.Time
}

func (f *fakeConversations) GetOrCreate(_ context.Context, userID, peerID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "conv-" + models.ParticipantsKey(userID, peerID), nil
}

func (f *fakeConversations) AppendChat(_ context.Context, _, senderID, content string, ts time.Time) (*models.Chat, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.received = append(f.received, ts)
	if ts.IsZero() {
		ts = serverTime
	}
	return &models.Chat{ID: primitive.NewObjectID(), SentBy: senderID, Content: content, Timestamp: ts}, nil
}

func (f *fakeConversations) MarkSeen(context.Context, string, string, string) error {
	return f.err
}

func (f *fakeConversations) Project(_ context.Context, conversationID, viewerID string) (*service.ConversationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.ConversationView{
		ID:          conversationID,
		Chats:       []service.ChatView{{ID: "c1", Text: "hi", User: models.Profile{ID: viewerID}}},
		PeerProfile: models.Profile{ID: "peer", Name: "Peer"},
	}, nil
}

func (f *fakeConversations) Summarize(context.Context, string) ([]service.Summary, error) {
	return []service.Summary{{
		ID:          "conv-1",
		LastMessage: "see you",
		Timestamp:   serverTime,
		UnreadCount: 2,
		PeerProfile: models.Profile{ID: "peer", Name: "Peer"},
	}}, f.err
}

func dialServer(t *testing.T, svc service.ConversationService) pb.ConversationServiceClient {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(logger)))
	NewConversationServer(svc, logger).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewConversationServiceClient(conn)
}

func TestConversationServer(t *testing.T) {
	client := dialServer(t, &fakeConversations{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.GetOrCreate(ctx, &pb.GetOrCreateRequest{UserId: "b", PeerId: "a"})
	require.NoError(t, err)
	assert.Equal(t, "conv-a_b", created.GetConversationId())

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	appended, err := client.AppendChat(ctx, &pb.AppendChatRequest{
		ConversationId: "conv-a_b",
		SenderId:       "a",
		Content:        "hello",
		Timestamp:      timestamppb.New(ts),
	})
	require.NoError(t, err)
	assert.Equal(t, "a", appended.GetChat().GetSentBy())
	assert.Equal(t, "hello", appended.GetChat().GetContent())
	assert.True(t, ts.Equal(appended.GetChat().GetTimestamp().AsTime()))
	assert.Len(t, appended.GetChat().GetId(), 24)

	_, err = client.MarkSeen(ctx, &pb.MarkSeenRequest{ConversationId: "conv-a_b", ViewerId: "b", PeerId: "a"})
	require.NoError(t, err)

	view, err := client.GetConversation(ctx, &pb.GetConversationRequest{ConversationId: "conv-a_b", ViewerId: "b"})
	require.NoError(t, err)
	assert.Equal(t, "conv-a_b", view.GetId())
	assert.Equal(t, "Peer", view.GetPeerProfile().GetName())
	require.Len(t, view.GetChats(), 1)
	assert.Equal(t, "b", view.GetChats()[0].GetUser().GetId())

	summaries, err := client.ListSummaries(ctx, &pb.ListSummariesRequest{ViewerId: "b"})
	require.NoError(t, err)
	require.Len(t, summaries.GetSummaries(), 1)
	assert.EqualValues(t, 2, summaries.GetSummaries()[0].GetUnreadCount())
	assert.True(t, serverTime.Equal(summaries.GetSummaries()[0].GetTimestamp().AsTime()))
}

func TestAppendChatWithoutTimestamp(t *testing.T) {
	convs := &fakeConversations{}
	client := dialServer(t, convs)

	appended, err := client.AppendChat(context.Background(), &pb.AppendChatRequest{
		ConversationId: "conv-a_b",
		SenderId:       "a",
		Content:        "no clock",
	})
	require.NoError(t, err)

	require.Len(t, convs.received, 1)
	assert.True(t, convs.received[0].IsZero(), "got %s", convs.received[0])
	assert.True(t, serverTime.Equal(appended.GetChat().GetTimestamp().AsTime()))

	_, err = client.AppendChat(context.Background(), &pb.AppendChatRequest{
		ConversationId: "conv-a_b",
		SenderId:       "a",
		Content:        "bad clock",
		Timestamp:      &timestamppb.Timestamp{Nanos: -1},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestConversationServerStatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{service.ErrInvalidID, codes.InvalidArgument},
		{service.ErrValidation, codes.InvalidArgument},
		{service.ErrConversationNotFound, codes.NotFound},
		{service.ErrNotParticipant, codes.PermissionDenied},
		{io.ErrUnexpectedEOF, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			client := dialServer(t, &fakeConversations{err: tt.err})
			_, err := client.GetOrCreate(context.Background(), &pb.GetOrCreateRequest{UserId: "a", PeerId: "b"})
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}
