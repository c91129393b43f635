package graphql

// Schema definición SDL del API. Campos en camelCase; el enum de estados usa
// la grafía canónica CANCELLED.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		name: String!
		lastname: String!
		email: String!
		createdAt: String
	}

	type Token {
		token: String!
	}

	type Product {
		id: ID!
		name: String!
		stock: Int!
		price: Float!
		createdAt: String!
	}

	type Client {
		id: ID!
		name: String!
		lastname: String!
		company: String!
		email: String!
		phone: String
		seller: ID!
		createdAt: String!
	}

	enum OrderStatus {
		PENDING
		COMPLETED
		CANCELLED
	}

	type OrderGroup {
		id: ID!
		quantity: Int!
	}

	type Order {
		id: ID!
		order: [OrderGroup!]!
		total: Float!
		client: Client!
		seller: ID!
		status: OrderStatus!
		createdAt: String!
	}

	type TopClient {
		total: Float!
		client: [Client!]!
	}

	type TopSeller {
		total: Float!
		seller: [User!]!
	}

	input UserInput {
		name: String!
		lastname: String!
		email: String!
		password: String!
	}

	input AuthenticateInput {
		email: String!
		password: String!
	}

	input ProductInput {
		name: String!
		stock: Int!
		price: Float!
	}

	input ClientInput {
		name: String!
		lastname: String!
		company: String!
		email: String!
		phone: String
	}

	input OrderProductInput {
		id: ID!
		quantity: Int!
	}

	input OrderInput {
		order: [OrderProductInput!]!
		total: Float!
		client: ID!
		status: OrderStatus
	}

	type Query {
		# Usuarios
		getUser: User!

		# Productos
		getProducts: [Product!]!
		getProduct(id: ID!): Product!
		searchProduct(text: String!): [Product!]!

		# Clientes
		getClients: [Client!]!
		getSellerClients: [Client!]!
		getClient(id: ID!): Client!

		# Pedidos
		getOrders: [Order!]!
		getSellerOrders: [Order!]!
		getOrder(id: ID!): Order!
		getOrdersForStatus(status: OrderStatus!): [Order!]!

		# Reportes
		bestClients: [TopClient!]!
		bestSellers: [TopSeller!]!
	}

	type Mutation {
		# Usuarios
		newUser(input: UserInput!): User!
		authenticateUser(input: AuthenticateInput!): Token!

		# Productos
		newProduct(input: ProductInput!): Product!
		updateProduct(id: ID!, input: ProductInput!): Product!
		deleteProduct(id: ID!): String!

		# Clientes
		newClient(input: ClientInput!): Client!
		updateClient(id: ID!, input: ClientInput!): Client!
		deleteClient(id: ID!): String!

		# Pedidos
		newOrder(input: OrderInput!): Order!
		updateOrder(id: ID!, input: OrderInput!): Order!
		deleteOrder(id: ID!): String!
	}
`
