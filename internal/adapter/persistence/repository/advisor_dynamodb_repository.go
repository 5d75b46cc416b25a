package repository

import (
	"context"
	"errors"

	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAdvisorsTableName = "advisors"

type advisorItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

// AdvisorDynamoRepository persists Advisor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AdvisorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdvisorRepository = (*AdvisorDynamoRepository)(nil)

func NewAdvisorDynamoRepository(ddb *dynamodb.Client) *AdvisorDynamoRepository {
	return &AdvisorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADVISORS_TABLE", defaultAdvisorsTableName),
	}
}

func (r *AdvisorDynamoRepository) List(ctx context.Context) ([]entities.Advisor, error) {
	advisors := make([]entities.Advisor, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it advisorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			advisors = append(advisors, entities.Advisor(it))
		}
	}
	return advisors, nil
}

func (r *AdvisorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Advisor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Advisor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Advisor{}, nil
	}

	var it advisorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Advisor{}, err
	}
	return entities.Advisor(it), nil
}

func (r *AdvisorDynamoRepository) Create(ctx context.Context, a entities.Advisor) (entities.Advisor, error) {
	av, err := attributevalue.MarshalMap(advisorItem(a))
	if err != nil {
		return entities.Advisor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Advisor{}, err
	}
	return a, nil
}

func (r *AdvisorDynamoRepository) Update(ctx context.Context, a entities.Advisor) (entities.Advisor, error) {
	av, err := attributevalue.MarshalMap(advisorItem(a))
	if err != nil {
		return entities.Advisor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Advisor{}, nil
		}
		return entities.Advisor{}, err
	}
	return a, nil
}

func (r *AdvisorDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
