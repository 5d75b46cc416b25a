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

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID              string `dynamodbav:"id"`
	EstimateNumber  string `dynamodbav:"estimate_number"`
	CustomerID      string `dynamodbav:"customer_id,omitempty"`
	FirstName       string `dynamodbav:"first_name"`
	LastName        string `dynamodbav:"last_name"`
	PhoneNumber     string `dynamodbav:"phone_number"`
	UnitDescription string `dynamodbav:"unit_description"`
	VIN             string `dynamodbav:"vin,omitempty"`
	AdvisorID       string `dynamodbav:"advisor_id,omitempty"`
	PaymentType     string `dynamodbav:"payment_type,omitempty"`
	Deductible      string `dynamodbav:"deductible,omitempty"`
	EstimateDate    string `dynamodbav:"estimate_date,omitempty"`

	RoofKit         float64 `dynamodbav:"roof_kit"`
	RoofMembrane    float64 `dynamodbav:"roof_membrane"`
	SlfLvlDicor     float64 `dynamodbav:"slf_lvl_dicor"`
	NonLvlDicor     float64 `dynamodbav:"non_lvl_dicor"`
	RoofScrews      float64 `dynamodbav:"roof_screws"`
	Glue            float64 `dynamodbav:"glue"`
	AdditionalParts float64 `dynamodbav:"additional_parts"`

	RepairDescription string  `dynamodbav:"repair_description"`
	Notes             string  `dynamodbav:"notes,omitempty"`
	Hrs               float64 `dynamodbav:"hrs"`
	LaborPerHr        float64 `dynamodbav:"labor_per_hr"`
	Sublet            float64 `dynamodbav:"sublet"`
	Extras            float64 `dynamodbav:"extras"`
	Labor             float64 `dynamodbav:"labor"`
	ShopSupplies      float64 `dynamodbav:"shop_supplies"`
	Tax               float64 `dynamodbav:"tax"`
	TotalEstimate     float64 `dynamodbav:"total_estimate"`

	JobCode string `dynamodbav:"job_code,omitempty"`

	// Opaque JSON blobs kept as raw strings; content is never interpreted.
	PartsConfiguration string `dynamodbav:"parts_configuration,omitempty"`
	LaborConfiguration string `dynamodbav:"labor_configuration,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	estimates := make([]entities.Estimate, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			estimates = append(estimates, fromEstimateItem(it))
		}
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                 e.ID,
		EstimateNumber:     e.EstimateNumber,
		CustomerID:         e.CustomerID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		PhoneNumber:        e.PhoneNumber,
		UnitDescription:    e.UnitDescription,
		VIN:                e.VIN,
		AdvisorID:          e.AdvisorID,
		PaymentType:        e.PaymentType,
		Deductible:         e.Deductible,
		EstimateDate:       e.EstimateDate,
		RoofKit:            e.RoofKit,
		RoofMembrane:       e.RoofMembrane,
		SlfLvlDicor:        e.SlfLvlDicor,
		NonLvlDicor:        e.NonLvlDicor,
		RoofScrews:         e.RoofScrews,
		Glue:               e.Glue,
		AdditionalParts:    e.AdditionalParts,
		RepairDescription:  e.RepairDescription,
		Notes:              e.Notes,
		Hrs:                e.Hrs,
		LaborPerHr:         e.LaborPerHr,
		Sublet:             e.Sublet,
		Extras:             e.Extras,
		Labor:              e.Labor,
		ShopSupplies:       e.ShopSupplies,
		Tax:                e.Tax,
		TotalEstimate:      e.TotalEstimate,
		JobCode:            e.JobCode,
		PartsConfiguration: string(e.PartsConfiguration),
		LaborConfiguration: string(e.LaborConfiguration),
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:                 it.ID,
		EstimateNumber:     it.EstimateNumber,
		CustomerID:         it.CustomerID,
		FirstName:          it.FirstName,
		LastName:           it.LastName,
		PhoneNumber:        it.PhoneNumber,
		UnitDescription:    it.UnitDescription,
		VIN:                it.VIN,
		AdvisorID:          it.AdvisorID,
		PaymentType:        it.PaymentType,
		Deductible:         it.Deductible,
		EstimateDate:       it.EstimateDate,
		RoofKit:            it.RoofKit,
		RoofMembrane:       it.RoofMembrane,
		SlfLvlDicor:        it.SlfLvlDicor,
		NonLvlDicor:        it.NonLvlDicor,
		RoofScrews:         it.RoofScrews,
		Glue:               it.Glue,
		AdditionalParts:    it.AdditionalParts,
		RepairDescription:  it.RepairDescription,
		Notes:              it.Notes,
		Hrs:                it.Hrs,
		LaborPerHr:         it.LaborPerHr,
		Sublet:             it.Sublet,
		Extras:             it.Extras,
		Labor:              it.Labor,
		ShopSupplies:       it.ShopSupplies,
		Tax:                it.Tax,
		TotalEstimate:      it.TotalEstimate,
		JobCode:            it.JobCode,
		PartsConfiguration: rawJSON(it.PartsConfiguration),
		LaborConfiguration: rawJSON(it.LaborConfiguration),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func rawJSON(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}
