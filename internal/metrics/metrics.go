package metrics

const Namespace = "billet"
