package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"captaleads/internal/entity"
	"captaleads/internal/infra/database"
)

// Leads de exemplo para popular o dashboard em desenvolvimento.
var sampleLeads = []entity.Lead{
	{Nome: "Ana Silva", Email: "ana.silva123@gmail.com", Telefone: "11987654321"},
	{Nome: "Carlos Oliveira", Email: "carlos.oliveira@hotmail.com", Telefone: "21976543210"},
	{Nome: "Mariana Santos", Email: "mari.santos@yahoo.com.br", Telefone: "31965432109"},
	{Nome: "Bruno Costa", Email: "bruno_costa@gmail.com", Telefone: "41954321098"},
	{Nome: "Fernanda Lima", Email: "fernanda.lima@outlook.com", Telefone: "51943210987"},
	{Nome: "Rafael Pereira", Email: "rafael.pereira@gmail.com", Telefone: "61932109876"},
	{Nome: "Juliana Alves", Email: "ju.alves@hotmail.com", Telefone: "71921098765"},
	{Nome: "Diego Martins", Email: "diego123@gmail.com", Telefone: "81910987654"},
	{Nome: "Camila Rodrigues", Email: "camilarodrigues@yahoo.com", Telefone: "11999888777"},
	{Nome: "Lucas Ferreira", Email: "lucas.ferreira@gmail.com", Telefone: "21998765432"},
	{Nome: "Patricia Mendes", Email: "patty.mendes@hotmail.com", Telefone: "31997654321"},
	{Nome: "Thiago Souza", Email: "thiago_souza@outlook.com", Telefone: "41996543210"},
	{Nome: "Larissa Barbosa", Email: "larissa.barbosa@gmail.com", Telefone: "51995432109"},
	{Nome: "Rodrigo Nunes", Email: "rodrigo.nunes@yahoo.com.br", Telefone: "61994321098"},
	{Nome: "Amanda Cardoso", Email: "amanda123@gmail.com", Telefone: "71993210987"},
	{Nome: "Felipe Rocha", Email: "felipe.rocha@hotmail.com", Telefone: "81992109876"},
	{Nome: "Gabriela Dias", Email: "gabi.dias@outlook.com", Telefone: "11988776655"},
	{Nome: "Mateus Gomes", Email: "mateus.gomes@gmail.com", Telefone: "21987665544"},
	{Nome: "Vanessa Moreira", Email: "vanessa_moreira@yahoo.com", Telefone: "31986554433"},
	{Nome: "Leonardo Pinto", Email: "leo.pinto@gmail.com", Telefone: "41985443322"},
	{Nome: "Bianca Araujo", Email: "bianca.araujo@hotmail.com", Telefone: "51984332211"},
	{Nome: "Gustavo Ribeiro", Email: "gustavo123@outlook.com", Telefone: "61983221100"},
	{Nome: "Priscila Castro", Email: "pri.castro@gmail.com", Telefone: "71982110099"},
	{Nome: "Renato Silva", Email: "renato.silva@yahoo.com.br", Telefone: "81981009988"},
	{Nome: "Tatiana Lopes", Email: "tatiana.lopes@gmail.com", Telefone: "11980998877"},
}

func main() {
	godotenv.Load()

	db, err := database.NewConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}

	repo := database.NewLeadRepository(db)
	ctx := context.Background()

	log.Println("🌱 Iniciando seed do banco de dados...")

	created := 0
	skipped := 0

	for _, sample := range sampleLeads {
		exists, err := repo.ExistsByEmail(ctx, sample.Email)
		if err != nil {
			log.Fatalf("❌ Erro ao verificar lead %s: %v", sample.Email, err)
		}
		if exists {
			log.Printf("⚠️ Lead já existe: %s (%s)", sample.Nome, sample.Email)
			skipped++
			continue
		}

		lead := sample
		lead.Status = entity.StatusNovo
		if err := repo.Create(ctx, &lead); err != nil {
			log.Printf("❌ Erro ao criar lead %s: %v", sample.Nome, err)
			skipped++
			continue
		}
		log.Printf("✅ Lead criado: %s", lead.Nome)
		created++
	}

	total, err := repo.Count(ctx, entity.LeadFilter{})
	if err != nil {
		log.Fatalf("❌ Erro ao contar leads: %v", err)
	}

	log.Println("🎉 Seed concluído!")
	log.Printf("📈 Leads criados: %d | ignorados: %d | total no banco: %d", created, skipped, total)
}
