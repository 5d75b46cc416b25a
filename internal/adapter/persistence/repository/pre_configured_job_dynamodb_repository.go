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

const (
	defaultJobsTableName = "pre_configured_jobs"
	jobsJobCodeIndex     = "job_code-index"
)

type preConfiguredJobItem struct {
	ID                string  `dynamodbav:"id"`
	JobCode           string  `dynamodbav:"job_code"`
	JobName           string  `dynamodbav:"job_name"`
	JobDescription    string  `dynamodbav:"job_description,omitempty"`
	RoofKit           float64 `dynamodbav:"roof_kit"`
	RoofMembrane      float64 `dynamodbav:"roof_membrane"`
	SlfLvlDicor       float64 `dynamodbav:"slf_lvl_dicor"`
	NonLvlDicor       float64 `dynamodbav:"non_lvl_dicor"`
	RoofScrews        float64 `dynamodbav:"roof_screws"`
	Glue              float64 `dynamodbav:"glue"`
	AdditionalParts   float64 `dynamodbav:"additional_parts"`
	RepairDescription string  `dynamodbav:"repair_description,omitempty"`
	Hrs               float64 `dynamodbav:"hrs"`
	LaborPerHr        float64 `dynamodbav:"labor_per_hr"`
	JobPrice          float64 `dynamodbav:"job_price"`
}

// PreConfiguredJobDynamoRepository persists PreConfiguredJob entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_code-index (PK: job_code)
type PreConfiguredJobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPreConfiguredJobRepository = (*PreConfiguredJobDynamoRepository)(nil)

func NewPreConfiguredJobDynamoRepository(ddb *dynamodb.Client) *PreConfiguredJobDynamoRepository {
	return &PreConfiguredJobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *PreConfiguredJobDynamoRepository) List(ctx context.Context) ([]entities.PreConfiguredJob, error) {
	jobs := make([]entities.PreConfiguredJob, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it preConfiguredJobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, entities.PreConfiguredJob(it))
		}
	}
	return jobs, nil
}

func (r *PreConfiguredJobDynamoRepository) GetByID(ctx context.Context, id string) (entities.PreConfiguredJob, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PreConfiguredJob{}, err
	}
	if len(out.Item) == 0 {
		return entities.PreConfiguredJob{}, nil
	}

	var it preConfiguredJobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PreConfiguredJob{}, err
	}
	return entities.PreConfiguredJob(it), nil
}

// GetByJobCode resolves a template by business key through the job_code GSI.
// The uniqueness invariant is enforced at create time, so at most one item
// matches; the first is returned if the invariant was ever violated manually.
func (r *PreConfiguredJobDynamoRepository) GetByJobCode(ctx context.Context, jobCode string) (entities.PreConfiguredJob, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsJobCodeIndex),
		KeyConditionExpression: aws.String("job_code = :jc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jc": &types.AttributeValueMemberS{Value: jobCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PreConfiguredJob{}, err
	}
	if len(out.Items) == 0 {
		return entities.PreConfiguredJob{}, nil
	}

	var it preConfiguredJobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PreConfiguredJob{}, err
	}
	return entities.PreConfiguredJob(it), nil
}

func (r *PreConfiguredJobDynamoRepository) Create(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error) {
	av, err := attributevalue.MarshalMap(preConfiguredJobItem(j))
	if err != nil {
		return entities.PreConfiguredJob{}, err
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
		return entities.PreConfiguredJob{}, err
	}
	return j, nil
}

func (r *PreConfiguredJobDynamoRepository) Update(ctx context.Context, j entities.PreConfiguredJob) (entities.PreConfiguredJob, error) {
	av, err := attributevalue.MarshalMap(preConfiguredJobItem(j))
	if err != nil {
		return entities.PreConfiguredJob{}, err
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
			return entities.PreConfiguredJob{}, nil
		}
		return entities.PreConfiguredJob{}, err
	}
	return j, nil
}

func (r *PreConfiguredJobDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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
