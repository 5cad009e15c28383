package broker

// The two query documents sent to the batch endpoint. They must match what
// the web app sends, fragments included, or the server trims the variant
// fields from the responses.

const queryMoreTransactions = `query moreTransactions($personId: ID!, $input: BrokerTransactionInput!, $portfolioId: ID!) {
  account(id: $personId) {
    id
    brokerPortfolio(id: $portfolioId) {
      id
      moreTransactions(input: $input) {
        ...MoreTransactionsFragment
        __typename
      }
      __typename
    }
    __typename
  }
}

fragment MoreTransactionsFragment on BrokerTransactionSummaries {
  cursor
  total
  transactions {
    id
    currency
    type
    status
    isCancellation
    lastEventDateTime
    description
    ...BrokerCashTransactionSummaryFragment
    ...BrokerNonTradeSecurityTransactionSummaryFragment
    ...BrokerSecurityTransactionSummaryFragment
    __typename
  }
  __typename
}

fragment BrokerCashTransactionSummaryFragment on BrokerCashTransactionSummary {
  cashTransactionType
  amount
  relatedIsin
  __typename
}

fragment BrokerNonTradeSecurityTransactionSummaryFragment on BrokerNonTradeSecurityTransactionSummary {
  nonTradeSecurityTransactionType
  quantity
  amount
  isin
  __typename
}

fragment BrokerSecurityTransactionSummaryFragment on BrokerSecurityTransactionSummary {
  securityTransactionType
  quantity
  amount
  side
  isin
  __typename
}`

const queryTransactionDetails = `query getTransactionDetails($personId: ID!, $transactionId: ID!, $portfolioId: ID!) {
  account(id: $personId) {
    id
    brokerPortfolio(id: $portfolioId) {
      id
      transactionDetails(id: $transactionId) {
        ...TransactionDetailsFragment
        __typename
      }
      __typename
    }
    __typename
  }
}

fragment TransactionDetailsFragment on BrokerTransaction {
  id
  currency
  type
  documents {
    id
    url
    label
    __typename
  }
  lastEventDateTime
  isPending
  isCancellation
  security {
    ...SecurityNameOnlyFragment
    __typename
  }
  transactionReference
  ...SecurityTransactionDetailsFragment
  ...CashTransactionDetailsFragment
  ...NonTradeSecurityTransactionDetailsFragment
  __typename
}

fragment SecurityNameOnlyFragment on Security {
  id
  name
  isin
  __typename
}

fragment SecurityTransactionDetailsFragment on BrokerSecurityTransaction {
  id
  side
  status
  numberOfShares {
    filled
    total
    __typename
  }
  averagePrice
  totalAmount
  finalisationReason
  limitPrice
  stopPrice
  validUntil
  isCancellationRequested
  tradeTransactionAmounts {
    marketValuation
    taxAmount
    transactionFee
    venueFee
    cryptoSpreadFee
    __typename
  }
  tradingVenue
  fee
  transactionalFee
  taxes
  securityTransactionHistory: transactionHistory {
    state
    timestamp
    numberOfShares {
      filled
      total
      __typename
    }
    executionPrice
    __typename
  }
  orderKind
  __typename
}

fragment CashTransactionDetailsFragment on BrokerCashTransaction {
  cashTransactionType
  amount
  description
  cashTransactionHistory: transactionHistory {
    state
    timestamp
    __typename
  }
  nonTradeSecurity: security {
    ...SecurityNameOnlyFragment
    __typename
  }
  sddiDetails {
    fee
    grossAmount
    __typename
  }
  __typename
}

fragment NonTradeSecurityTransactionDetailsFragment on BrokerNonTradeSecurityTransaction {
  isin
  nonTradeSecurityTransactionType
  quantity
  nonTradeAveragePrice: averagePrice
  nonTradeSecurityAmount: totalAmount
  description
  nonTradeSecurityTransactionHistory: transactionHistory {
    state
    timestamp
    __typename
  }
  nonTradeSecurity: security {
    ...SecurityNameOnlyFragment
    __typename
  }
  __typename
}`
