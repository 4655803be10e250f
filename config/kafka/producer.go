package kafka

import (
	"fmt"
	"sync"

	"influencer-srv/config"
	"influencer-srv/pkg/kafka"
)

var (
	fetchInstance   kafka.IProducer
	fetchOnce       sync.Once
	fetchMu         sync.RWMutex
	fetchInitErr    error
	profileInstance kafka.IProducer
	profileOnce     sync.Once
	profileMu       sync.RWMutex
	profileInitErr  error
)

// ConnectFetchProducer initializes the producer for the fetch-job topic using
// singleton pattern. Safe for concurrent use.
func ConnectFetchProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	fetchMu.Lock()
	defer fetchMu.Unlock()

	if fetchInstance != nil {
		return fetchInstance, nil
	}

	if fetchInitErr != nil {
		fetchOnce = sync.Once{}
		fetchInitErr = nil
	}

	var err error
	fetchOnce.Do(func() {
		client, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.FetchTopic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka fetch producer: %w", e)
			fetchInitErr = err
			return
		}

		fetchInstance = client
	})

	return fetchInstance, err
}

// ConnectProfileProducer initializes the producer for the profile-updated
// topic using singleton pattern. Safe for concurrent use.
func ConnectProfileProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	profileMu.Lock()
	defer profileMu.Unlock()

	if profileInstance != nil {
		return profileInstance, nil
	}

	if profileInitErr != nil {
		profileOnce = sync.Once{}
		profileInitErr = nil
	}

	var err error
	profileOnce.Do(func() {
		client, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.ProfileTopic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka profile producer: %w", e)
			profileInitErr = err
			return
		}

		profileInstance = client
	})

	return profileInstance, err
}

// DisconnectProducers closes both producers and resets the singletons.
func DisconnectProducers() error {
	fetchMu.Lock()
	if fetchInstance != nil {
		if err := fetchInstance.Close(); err != nil {
			fetchMu.Unlock()
			return err
		}
		fetchInstance = nil
		fetchOnce = sync.Once{}
		fetchInitErr = nil
	}
	fetchMu.Unlock()

	profileMu.Lock()
	defer profileMu.Unlock()
	if profileInstance != nil {
		if err := profileInstance.Close(); err != nil {
			return err
		}
		profileInstance = nil
		profileOnce = sync.Once{}
		profileInitErr = nil
	}
	return nil
}
