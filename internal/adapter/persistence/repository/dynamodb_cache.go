package repository

import (
	"context"
	"simulador_tokenizacao/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the cache.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type resultItem struct {
	Key       string `dynamodbav:"cache_key"`
	Value     string `dynamodbav:"value"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at,omitempty"`
}

// DynamoResultCache memoizes engine results in DynamoDB.
//
// Table requirements:
//   - PK: cache_key (string)
//   - TTL attribute: expires_at (epoch seconds), optional
//
// DynamoDB deletes expired items lazily, so Get also checks expires_at.

type DynamoResultCache struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ISimulationCache = (*DynamoResultCache)(nil)

func NewDynamoResultCache(ddb DynamoDBAPI, tableName string, ttl time.Duration) *DynamoResultCache {
	return &DynamoResultCache{ddb: ddb, tableName: tableName, ttl: ttl, now: time.Now}
}

func (r *DynamoResultCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil || len(out.Item) == 0 {
		return nil, false, nil
	}

	var it resultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return nil, false, nil
	}
	return []byte(it.Value), true, nil
}

func (r *DynamoResultCache) Set(ctx context.Context, key string, value []byte) error {
	now := r.now().UTC()
	it := resultItem{
		Key:       key,
		Value:     string(value),
		CreatedAt: now.Format(time.RFC3339Nano),
	}
	if r.ttl > 0 {
		it.ExpiresAt = now.Add(r.ttl).Unix()
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
