package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// unicidade manages guard items: one item per unique value, keyed by "chave"
// and owned ("dono") by the id of the entity holding the value. Writing the
// guard in the same transaction as the entity turns a duplicate into a failed
// condition instead of a race.
//
// Table requirements:
//   - PK: chave (string)
type unicidade struct {
	ddb       *dynamodb.Client
	tableName string
}

func chaveNumeroQuarto(numero int) string {
	return fmt.Sprintf("quarto#numero#%d", numero)
}

func chaveCPF(cpf string) string {
	return "hospede#cpf#" + cpf
}

func chaveReservaAtiva(quartoID string) string {
	return "quarto#reserva_ativa#" + quartoID
}

func (u unicidade) chave(chave string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"chave": &types.AttributeValueMemberS{Value: chave},
	}
}

// reservar claims chave for dono. It fails if another owner holds it.
func (u unicidade) reservar(chave, dono string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(u.tableName),
			Item: map[string]types.AttributeValue{
				"chave": &types.AttributeValueMemberS{Value: chave},
				"dono":  &types.AttributeValueMemberS{Value: dono},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#chave) OR #dono = :dono"),
			ExpressionAttributeNames: map[string]string{"#chave": "chave", "#dono": "dono"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":dono": &types.AttributeValueMemberS{Value: dono},
			},
		},
	}
}

// liberar drops chave if dono still holds it.
func (u unicidade) liberar(chave, dono string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(u.tableName),
			Key:                      u.chave(chave),
			ConditionExpression:      aws.String("attribute_not_exists(#chave) OR #dono = :dono"),
			ExpressionAttributeNames: map[string]string{"#chave": "chave", "#dono": "dono"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":dono": &types.AttributeValueMemberS{Value: dono},
			},
		},
	}
}

// dono returns the owner of chave, or "" when nobody holds it.
func (u unicidade) dono(ctx context.Context, chave string) (string, error) {
	out, err := u.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(u.tableName),
		Key:            u.chave(chave),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	v, ok := out.Item["dono"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return v.Value, nil
}

func (u unicidade) transacao(ctx context.Context, itens ...types.TransactWriteItem) error {
	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: itens})
	return err
}
