package kafka

import (
	"context"
	"encoding/json"
	"time"

	"tubehub/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ChannelEventHandler 处理频道变更事件的回调函数
type ChannelEventHandler func(ctx context.Context, ev *ChannelEvent) error

// DecodeChannelEvent 解析消息体，缺少 channel_id 的消息视为无效
func DecodeChannelEvent(value []byte) (*ChannelEvent, bool) {
	var ev ChannelEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		logger.Error("Failed to unmarshal channel event",
			zap.Error(err),
			zap.ByteString("value", value),
		)
		return nil, false
	}
	if ev.ChannelID == "" {
		logger.Warn("Channel event without channel_id skipped", zap.ByteString("value", value))
		return nil, false
	}
	return &ev, true
}

// StartChannelEventConsumer 启动频道事件消费者（阻塞，需在 goroutine 中运行）。
// 处理失败只记录日志，不重试
func StartChannelEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ChannelEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka channel event consumer stopped")
	}()

	logger.Info("Kafka channel event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		ev, ok := DecodeChannelEvent(msg.Value)
		if !ok {
			continue
		}

		if err := handler(ctx, ev); err != nil {
			logger.Error("Failed to handle channel event",
				zap.String("channel_id", ev.ChannelID),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}
