package output

import (
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/chrisdamba/foodataseed/internal/output/producers"
)

// KafkaSink publishes every generated record as a JSON message to a
// per-table topic (<prefix>.<table>), for pipelines that ingest seed data as
// an event stream instead of SQL files.
type KafkaSink struct {
	producer *producers.SaramaProducer
	prefix   string
}

func NewKafkaSink(brokerList, topicPrefix string) (*KafkaSink, error) {
	producer, err := producers.NewSaramaProducer(brokerList)
	if err != nil {
		return nil, err
	}
	if topicPrefix == "" {
		topicPrefix = "foodataseed"
	}
	return &KafkaSink{producer: producer, prefix: topicPrefix}, nil
}

func (k *KafkaSink) WriteDataset(ds *models.Dataset) error {
	for _, r := range ds.Restaurants {
		if err := k.publish("restaurants", r); err != nil {
			return err
		}
	}
	for _, c := range ds.Customers {
		if err := k.publish("customers", c); err != nil {
			return err
		}
	}
	for _, d := range ds.Drivers {
		if err := k.publish("drivers", d); err != nil {
			return err
		}
	}
	for _, o := range ds.Orders {
		if err := k.publish("orders", o); err != nil {
			return err
		}
	}
	for _, p := range ds.Promotions {
		if err := k.publish("promotions", p); err != nil {
			return err
		}
	}
	for _, l := range ds.OrderPromotions {
		if err := k.publish("order_promotions", l); err != nil {
			return err
		}
	}
	return nil
}

func (k *KafkaSink) publish(table string, record any) error {
	msg, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling %s record: %w", table, err)
	}
	topic := fmt.Sprintf("%s.%s", k.prefix, table)
	if err := k.producer.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

func (k *KafkaSink) Close() error {
	return k.producer.Close()
}
