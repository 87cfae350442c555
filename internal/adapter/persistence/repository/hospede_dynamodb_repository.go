package repository

import (
	"context"
	"log"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/domain/valueobjects"
	"hotel_reservas/internal/usecase"
	"hotel_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type hospedeItem struct {
	ID           string `dynamodbav:"id"`
	Nome         string `dynamodbav:"nome"`
	Sobrenome    string `dynamodbav:"sobrenome"`
	CPF          string `dynamodbav:"cpf"`
	Email        string `dynamodbav:"email"`
	CriadoEm     string `dynamodbav:"criado_em"`
	AtualizadoEm string `dynamodbav:"atualizado_em"`
}

// HospedeDynamoRepository persists guests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CPFs (digits only) are unique through guard items in the uniqueness table.
type HospedeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	unicidade unicidade
}

var _ interfaces.IHospedeRepository = (*HospedeDynamoRepository)(nil)

func NewHospedeDynamoRepository(ddb *dynamodb.Client, tableName, unicidadeTable string) *HospedeDynamoRepository {
	return &HospedeDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		unicidade: unicidade{ddb: ddb, tableName: unicidadeTable},
	}
}

func (r *HospedeDynamoRepository) Criar(ctx context.Context, h *entities.Hospede) (*entities.Hospede, error) {
	it := toHospedeItem(h.ToData())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	err = r.unicidade.transacao(ctx,
		types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		r.unicidade.reservar(chaveCPF(it.CPF), it.ID),
	)
	if condicaoFalhou(err) {
		log.Printf("[hospedes][repository] cpf duplicado id=%s", it.ID)
		return nil, usecase.ErrCPFDuplicado
	}
	if err != nil {
		return nil, err
	}
	return fromHospedeItem(it)
}

func (r *HospedeDynamoRepository) BuscarPorID(ctx context.Context, id string) (*entities.Hospede, error) {
	var it hospedeItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return nil, err
	}
	return fromHospedeItem(it)
}

func (r *HospedeDynamoRepository) BuscarPorCPF(ctx context.Context, cpf valueobjects.CPF) (*entities.Hospede, error) {
	id, err := r.unicidade.dono(ctx, chaveCPF(cpf.Valor()))
	if err != nil || id == "" {
		return nil, err
	}
	return r.BuscarPorID(ctx, id)
}

func (r *HospedeDynamoRepository) BuscarTodos(ctx context.Context) ([]*entities.Hospede, error) {
	items, err := scanAll[hospedeItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	porCriacao(items, func(it hospedeItem) string { return it.CriadoEm })

	out := make([]*entities.Hospede, 0, len(items))
	for _, it := range items {
		h, err := fromHospedeItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *HospedeDynamoRepository) Atualizar(ctx context.Context, id string, h *entities.Hospede) (*entities.Hospede, error) {
	d := h.ToData()
	d.ID = id
	it := toHospedeItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	var anterior hospedeItem
	existia, err := getItem(ctx, r.ddb, r.tableName, id, &anterior)
	if err != nil {
		return nil, err
	}

	itens := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.tableName), Item: av}},
		r.unicidade.reservar(chaveCPF(it.CPF), id),
	}
	if existia && anterior.CPF != it.CPF {
		itens = append(itens, r.unicidade.liberar(chaveCPF(anterior.CPF), id))
	}

	err = r.unicidade.transacao(ctx, itens...)
	if condicaoFalhou(err) {
		log.Printf("[hospedes][repository] cpf duplicado id=%s", id)
		return nil, usecase.ErrCPFDuplicado
	}
	if err != nil {
		return nil, err
	}
	return fromHospedeItem(it)
}

func (r *HospedeDynamoRepository) Deletar(ctx context.Context, id string) error {
	var it hospedeItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return err
	}
	return r.unicidade.transacao(ctx,
		types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: idKey(id)}},
		r.unicidade.liberar(chaveCPF(it.CPF), id),
	)
}

func (r *HospedeDynamoRepository) ExisteCPF(ctx context.Context, cpf valueobjects.CPF, idExcluir string) (bool, error) {
	dono, err := r.unicidade.dono(ctx, chaveCPF(cpf.Valor()))
	if err != nil {
		return false, err
	}
	return dono != "" && dono != idExcluir, nil
}

func toHospedeItem(d entities.HospedeData) hospedeItem {
	return hospedeItem{
		ID:           d.ID,
		Nome:         d.Nome,
		Sobrenome:    d.Sobrenome,
		CPF:          d.CPF,
		Email:        d.Email,
		CriadoEm:     timeToString(d.CriadoEm),
		AtualizadoEm: timeToString(d.AtualizadoEm),
	}
}

func fromHospedeItem(it hospedeItem) (*entities.Hospede, error) {
	return entities.HospedeFromData(entities.HospedeData{
		ID:           it.ID,
		Nome:         it.Nome,
		Sobrenome:    it.Sobrenome,
		CPF:          it.CPF,
		Email:        it.Email,
		CriadoEm:     stringToTime(it.CriadoEm),
		AtualizadoEm: stringToTime(it.AtualizadoEm),
	})
}
