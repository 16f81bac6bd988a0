package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tubehub/internal/config"
	"tubehub/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// ChannelEvent 频道资料变更消息体，worker 据此把冗余字段同步到视频目录
type ChannelEvent struct {
	ChannelID string    `json:"channel_id"`
	Name      string    `json:"name,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}

	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendRaw 发送原始消息到指定 topic
func SendRaw(ctx context.Context, topic, key string, value []byte) error {
	if producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send kafka message: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}

// ChannelEventPublisher 把频道变更事件写入 channel_updated topic，
// 以 channel_id 作为 key 保证同一频道的事件有序
type ChannelEventPublisher struct {
	topic string
}

func NewChannelEventPublisher(topic string) *ChannelEventPublisher {
	return &ChannelEventPublisher{topic: topic}
}

func (p *ChannelEventPublisher) PublishChannelUpdated(ctx context.Context, ev *ChannelEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal channel event: %w", err)
	}

	if err := SendRaw(ctx, p.topic, ev.ChannelID, payload); err != nil {
		return err
	}

	logger.Debug("Channel event sent",
		zap.String("channel_id", ev.ChannelID),
		zap.String("topic", p.topic),
	)
	return nil
}
