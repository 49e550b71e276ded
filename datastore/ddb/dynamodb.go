/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-logr/logr"
	"github.com/go-openapi/strfmt"
)

// EntityType is injected into every item written by the store.
const EntityType = "PersistedSlice"

// DefaultIndexMap derives the primary key of an item from its storage key.
var DefaultIndexMap = map[string]string{
	"PK": "PERSIST#{Key}",
	"SK": "PERSIST#{Key}",
}

// API is the subset of the DynamoDB client used by KeyValueStore.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// Item is the stored shape of one persisted slice.
type Item struct {
	Key        string `dynamodbav:"Key"`
	Value      string `dynamodbav:"Value"`
	EntityType string `dynamodbav:"EntityType"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

// Entry is a persisted value with its write time.
type Entry struct {
	Value     string
	UpdatedAt strfmt.DateTime
}

// KeyValueStore implements datastore.KeyValue on a DynamoDB table.
type KeyValueStore struct {
	client    API
	tableName string
	indexMap  map[string]string
	now       func() time.Time
	log       logr.Logger
}

// Option configures a KeyValueStore.
type Option func(*KeyValueStore)

// WithIndexMap overrides DefaultIndexMap. Templates may reference {Key}.
func WithIndexMap(indexMap map[string]string) Option {
	return func(s *KeyValueStore) {
		s.indexMap = indexMap
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(s *KeyValueStore) {
		s.log = l
	}
}

// WithClock sets the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *KeyValueStore) {
		s.now = now
	}
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	// Convert keysInput to a map of attribute values
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			switch tv := av[key].(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
		res[fieldName] = expanded
	}

	return res, nil
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewKeyValueStore creates a store on tableName using client.
func NewKeyValueStore(client API, tableName string, opts ...Option) *KeyValueStore {
	s := &KeyValueStore{
		client:    client,
		tableName: tableName,
		indexMap:  DefaultIndexMap,
		now:       time.Now,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewKeyValueStoreFromCredentials builds the DynamoDB client and the store.
func NewKeyValueStoreFromCredentials(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName string, opts ...Option) (*KeyValueStore, error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	s := NewKeyValueStore(client, tableName, opts...)
	s.log.V(1).Info("DynamoDB client initialized", "table", tableName, "region", awsRegion)
	return s, nil
}

func (s *KeyValueStore) key(storageKey string) (map[string]types.AttributeValue, error) {
	expanded, err := expandMacros(s.indexMap, Item{Key: storageKey})
	if err != nil {
		return nil, err
	}
	return buildKeyFromExpanded(expanded)
}

// Get retrieves the value persisted under key.
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	entry, ok, err := s.Stat(ctx, key)
	return entry.Value, ok, err
}

// Stat retrieves the value persisted under key together with its write time.
func (s *KeyValueStore) Stat(ctx context.Context, key string) (Entry, bool, error) {
	keyMap, err := s.key(key)
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &s.tableName,
		Key:            keyMap,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return Entry{}, false, nil
	}

	var item Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return Entry{}, false, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	entry := Entry{Value: item.Value}
	if item.UpdatedAt != "" {
		if entry.UpdatedAt, err = strfmt.ParseDateTime(item.UpdatedAt); err != nil {
			return Entry{}, false, fmt.Errorf("invalid UpdatedAt %q: %w", item.UpdatedAt, err)
		}
	}
	return entry, true, nil
}

// Set persists value under key, stamping EntityType and UpdatedAt.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	item := Item{
		Key:        key,
		Value:      value,
		EntityType: EntityType,
		UpdatedAt:  strfmt.DateTime(s.now().UTC()).String(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	expanded, err := expandMacros(s.indexMap, item)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes the item of key.
func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	keyMap, err := s.key(key)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyMap,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("delete condition failed: %w", err)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}
